// Package store implements the in-memory entity store backing the demo
// API: two keyed collections (users, tasks) behind a single lock, with
// referential integrity between tasks and their owning users.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/ozgurgul/taskdemo/internal/models"
)

var (
	// ErrUserNotFound is returned when an operation targets a user id
	// that is not in the store.
	ErrUserNotFound = errors.New("store: user not found")
	// ErrTaskNotFound is returned when an operation targets a task id
	// that is not in the store.
	ErrTaskNotFound = errors.New("store: task not found")
	// ErrInvalidReference is returned when a task write supplies a
	// user_id that does not resolve to an existing user.
	ErrInvalidReference = errors.New("store: referenced user does not exist")
	// ErrConsistency signals that the order index and the collection map
	// disagree. It is unreachable under correct bookkeeping and is never
	// swallowed by the store.
	ErrConsistency = errors.New("store: index out of sync with collection")
)

// Store owns the user and task collections. All operations take the
// single mutex for their full duration, so no caller ever observes a
// partially applied effect; DeleteUser in particular holds the write
// lock across the entire cascade.
//
// Iteration order of ListUsers/ListTasks is insertion order, which is
// stable for an unmodified snapshot.
type Store struct {
	mu sync.RWMutex

	users map[string]models.User
	tasks map[string]models.Task

	// Insertion-order indexes. Maps alone would give a randomized
	// iteration order, breaking the stable-snapshot guarantee.
	userOrder []string
	taskOrder []string
}

// Stats reports collection sizes for the admin/stats endpoint.
type Stats struct {
	Users          int `json:"users_count"`
	Tasks          int `json:"tasks_count"`
	CompletedTasks int `json:"completed_tasks"`
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users: make(map[string]models.User),
		tasks: make(map[string]models.Task),
	}
}

// newID returns a fresh opaque identifier. Random UUIDs give
// collision-free ids for any realistic process lifetime.
func newID() string {
	return uuid.NewString()
}

// CreateUser stores a new user and returns it with its assigned id.
// Field-level validation (name, email syntax, age range) is the
// caller's responsibility.
func (s *Store) CreateUser(name, email string, age *int) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{
		ID:    newID(),
		Name:  name,
		Email: email,
		Age:   cloneInt(age),
	}
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return cloneUser(u)
}

// GetUser looks up a user by id.
func (s *Store) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	return cloneUser(u), nil
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		if u, ok := s.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out
}

// UpdateUser replaces every field of the user except its id.
func (s *Store) UpdateUser(id, name, email string, age *int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	u := models.User{
		ID:    id,
		Name:  name,
		Email: email,
		Age:   cloneInt(age),
	}
	s.users[id] = u
	return cloneUser(u), nil
}

// DeleteUser removes a user and, first, every task referencing it. The
// write lock is held across the whole cascade, so no reader can observe
// the user gone with orphan tasks remaining or vice versa.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}

	var owned []string
	for _, tid := range s.taskOrder {
		t, ok := s.tasks[tid]
		if !ok {
			return fmt.Errorf("%w: task %s indexed but missing", ErrConsistency, tid)
		}
		if t.UserID != nil && *t.UserID == id {
			owned = append(owned, tid)
		}
	}
	for _, tid := range owned {
		if err := s.removeTaskLocked(tid); err != nil {
			return err
		}
	}

	delete(s.users, id)
	s.userOrder = removeID(s.userOrder, id)
	return nil
}

// CreateTask stores a new task. A non-nil userID must resolve to an
// existing user or the task is rejected with ErrInvalidReference and
// nothing is created. Completed always starts false.
func (s *Store) CreateTask(title string, description, userID *string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID != nil {
		if _, ok := s.users[*userID]; !ok {
			return models.Task{}, fmt.Errorf("%w: %s", ErrInvalidReference, *userID)
		}
	}
	t := models.Task{
		ID:          newID(),
		Title:       title,
		Description: cloneString(description),
		Completed:   false,
		UserID:      cloneString(userID),
	}
	s.tasks[t.ID] = t
	s.taskOrder = append(s.taskOrder, t.ID)
	return cloneTask(t), nil
}

// GetTask looks up a task by id.
func (s *Store) GetTask(id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return cloneTask(t), nil
}

// ListTasks returns the tasks matching the filter, in insertion order.
// The zero filter matches everything.
func (s *Store) ListTasks(f TaskFilter) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Task, 0, len(s.taskOrder))
	for _, id := range s.taskOrder {
		t, ok := s.tasks[id]
		if !ok {
			continue
		}
		if f.matches(t) {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// UpdateTask replaces every field of the task except its id. A non-nil
// userID is validated against the user collection before anything is
// written; on failure the existing record is untouched.
func (s *Store) UpdateTask(id, title string, description *string, completed bool, userID *string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if userID != nil {
		if _, ok := s.users[*userID]; !ok {
			return models.Task{}, fmt.Errorf("%w: %s", ErrInvalidReference, *userID)
		}
	}
	t := models.Task{
		ID:          id,
		Title:       title,
		Description: cloneString(description),
		Completed:   completed,
		UserID:      cloneString(userID),
	}
	s.tasks[id] = t
	return cloneTask(t), nil
}

// CompleteTask sets completed to true, leaving every other field
// untouched. Completing an already-completed task is a no-op.
func (s *Store) CompleteTask(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	t.Completed = true
	s.tasks[id] = t
	return cloneTask(t), nil
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.removeTaskLocked(id)
}

// Reset atomically returns the store to the empty state. Intended for
// tests and the admin endpoint.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]models.User)
	s.tasks = make(map[string]models.Task)
	s.userOrder = nil
	s.taskOrder = nil
}

// Stats returns current collection counts.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Users: len(s.users),
		Tasks: len(s.tasks),
	}
	for _, t := range s.tasks {
		if t.Completed {
			st.CompletedTasks++
		}
	}
	return st
}

// removeTaskLocked deletes a task from both the map and the order
// index. Caller must hold the write lock.
func (s *Store) removeTaskLocked(id string) error {
	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("%w: task %s vanished during delete", ErrConsistency, id)
	}
	delete(s.tasks, id)
	s.taskOrder = removeID(s.taskOrder, id)
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Records are stored and returned by value; pointer-typed optional
// fields are cloned both ways so callers can never alias store state.

func cloneUser(u models.User) models.User {
	u.Age = cloneInt(u.Age)
	return u
}

func cloneTask(t models.Task) models.Task {
	t.Description = cloneString(t.Description)
	t.UserID = cloneString(t.UserID)
	return t
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
