package cli

import (
	"fmt"

	"github.com/ozgurgul/taskdemo/internal/client"
	"github.com/ozgurgul/taskdemo/internal/store"
	"github.com/spf13/cobra"
)

func newTaskCommand(newClient func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskCreateCommand(newClient))
	cmd.AddCommand(newTaskListCommand(newClient))
	cmd.AddCommand(newTaskCompleteCommand(newClient))
	return cmd
}

func newTaskCreateCommand(newClient func() *client.Client) *cobra.Command {
	var (
		title       string
		description string
		userID      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var descPtr, userPtr *string
			if cmd.Flags().Changed("description") {
				descPtr = &description
			}
			if cmd.Flags().Changed("user-id") {
				userPtr = &userID
			}

			task, err := newClient().CreateTask(cmd.Context(), title, descPtr, userPtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task: %s [ID: %s]\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title of the task")
	cmd.Flags().StringVar(&description, "description", "", "Task description (optional)")
	cmd.Flags().StringVar(&userID, "user-id", "", "Assign to user ID (optional)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCommand(newClient func() *client.Client) *cobra.Command {
	var (
		completed bool
		userID    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with optional filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter store.TaskFilter
			if cmd.Flags().Changed("completed") {
				filter.Completed = &completed
			}
			if cmd.Flags().Changed("user-id") {
				filter.UserID = &userID
			}

			tasks, err := newClient().ListTasks(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tasks:")
			for _, t := range tasks {
				status := "[ ]"
				if t.Completed {
					status = "[x]"
				}
				userInfo := ""
				if t.UserID != nil {
					userInfo = fmt.Sprintf(" [User: %s]", *t.UserID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s%s [ID: %s]\n", status, t.Title, userInfo, t.ID)
				if t.Description != nil && *t.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "      Description: %s\n", *t.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "Filter by completion status")
	cmd.Flags().StringVar(&userID, "user-id", "", "Filter by user ID")

	return cmd
}

func newTaskCompleteCommand(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := newClient().CompleteTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed task: %s\n", task.Title)
			return nil
		},
	}
}
