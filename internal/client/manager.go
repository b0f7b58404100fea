package client

import (
	"context"
	"strings"

	"github.com/ozgurgul/taskdemo/internal/models"
	"github.com/ozgurgul/taskdemo/internal/store"
	"github.com/ozgurgul/taskdemo/internal/summary"
	"github.com/ozgurgul/taskdemo/internal/validate"
)

// Manager wraps a Client with the client-side business logic: input
// validation before any remote call, and summary composition from
// multiple calls.
type Manager struct {
	api *Client
}

// NewManager creates a Manager on top of api.
func NewManager(api *Client) *Manager {
	return &Manager{api: api}
}

// CreateUser validates name, email and age and, only when all pass,
// creates the user remotely. The name is stored trimmed.
func (m *Manager) CreateUser(ctx context.Context, name, email string, age *int) (models.User, error) {
	if err := validate.UserInput(name, email, age); err != nil {
		return models.User{}, err
	}
	return m.api.CreateUser(ctx, strings.TrimSpace(name), email, age)
}

// UserSummary fetches the user and its tasks and aggregates them into
// a summary report.
func (m *Manager) UserSummary(ctx context.Context, userID string) (summary.Report, error) {
	user, err := m.api.GetUser(ctx, userID)
	if err != nil {
		return summary.Report{}, err
	}
	tasks, err := m.api.ListTasks(ctx, store.ByUser(userID))
	if err != nil {
		return summary.Report{}, err
	}
	return summary.Summarize(user, tasks), nil
}
