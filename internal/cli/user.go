package cli

import (
	"fmt"

	"github.com/ozgurgul/taskdemo/internal/client"
	"github.com/spf13/cobra"
)

func newUserCommand(newClient func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(newUserCreateCommand(newClient))
	cmd.AddCommand(newUserListCommand(newClient))
	cmd.AddCommand(newUserSummaryCommand(newClient))
	return cmd
}

func newUserCreateCommand(newClient func() *client.Client) *cobra.Command {
	var (
		name  string
		email string
		age   int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var agePtr *int
			if cmd.Flags().Changed("age") {
				agePtr = &age
			}

			// Validation runs before any request is sent; an invalid
			// input never reaches the API.
			mgr := client.NewManager(newClient())
			user, err := mgr.CreateUser(cmd.Context(), name, email, agePtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user: %s (%s)\n", user.Name, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the user")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().IntVar(&age, "age", 0, "Age (optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUserListCommand(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := newClient().ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Users:")
			for _, u := range users {
				ageInfo := ""
				if u.Age != nil {
					ageInfo = fmt.Sprintf(" (age: %d)", *u.Age)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s - %s%s [ID: %s]\n", u.Name, u.Email, ageInfo, u.ID)
			}
			return nil
		},
	}
}

func newUserSummaryCommand(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <user-id>",
		Short: "Show a user's task summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := client.NewManager(newClient())
			report, err := mgr.UserSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User Summary for %s (%s)\n", report.User.Name, report.User.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Total tasks: %d\n", report.Total)
			fmt.Fprintf(cmd.OutOrStdout(), "Completed: %d\n", report.Completed)
			fmt.Fprintf(cmd.OutOrStdout(), "Pending: %d\n", report.Pending)
			fmt.Fprintf(cmd.OutOrStdout(), "Completion rate: %.1f%%\n", report.CompletionRate*100)
			return nil
		},
	}
}
