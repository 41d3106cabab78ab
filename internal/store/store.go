package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/tasktick/internal/model"
)

type MutationKind string

const (
	MutationAdd       MutationKind = "add"
	MutationToggle    MutationKind = "toggle"
	MutationRemove    MutationKind = "remove"
	MutationClearDone MutationKind = "clear_done"
)

// Mutation describes one successful store change. The listener receives
// it after the change is applied, so counts read from the store reflect
// the new state.
type Mutation struct {
	Kind   MutationKind
	TaskID string
}

// Store holds the ordered task list. Insertion order is preserved,
// newest appended last, duplicate titles allowed. It is touched only
// from the update loop, so it carries no locking.
type Store struct {
	tasks    []model.Task
	listener func(Mutation)
	now      func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// NewWithTasks seeds the store, typically from the persistence adapter.
// Seeding is not a mutation and does not notify the listener.
func NewWithTasks(tasks []model.Task) *Store {
	s := New()
	s.tasks = append(s.tasks, tasks...)
	return s
}

// OnChange registers the single change listener. Every mutating
// operation notifies it exactly once; the application root uses this to
// couple presenter refresh and countdown re-evaluation to mutations.
func (s *Store) OnChange(fn func(Mutation)) {
	s.listener = fn
}

// Add appends a pending task. A title that trims to empty is a silent
// no-op and returns ok=false.
func (s *Store) Add(title string) (model.Task, bool) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return model.Task{}, false
	}
	task := model.Task{
		ID:        uuid.NewString(),
		Title:     trimmed,
		CreatedAt: s.now().UTC(),
	}
	s.tasks = append(s.tasks, task)
	s.notify(Mutation{Kind: MutationAdd, TaskID: task.ID})
	return task, true
}

// Toggle flips Done on the task with the given ID.
func (s *Store) Toggle(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
			s.notify(Mutation{Kind: MutationToggle, TaskID: id})
			return true
		}
	}
	return false
}

// Remove deletes the task with the given ID, preserving the order of
// the rest. Removal is by identity, so a duplicate title elsewhere in
// the list is untouched.
func (s *Store) Remove(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.notify(Mutation{Kind: MutationRemove, TaskID: id})
			return true
		}
	}
	return false
}

// ClearDone removes every completed task and returns how many were
// dropped. Relative order of the remaining tasks is preserved.
func (s *Store) ClearDone() int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Done {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if removed > 0 {
		s.notify(Mutation{Kind: MutationClearDone})
	}
	return removed
}

func (s *Store) PendingCount() int {
	n := 0
	for _, t := range s.tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

func (s *Store) TotalCount() int {
	return len(s.tasks)
}

// Tasks returns a copy of the ordered task list.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// PendingTitles returns the titles of unchecked tasks in store order.
// This is the fire-event payload.
func (s *Store) PendingTitles() []string {
	out := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Done {
			out = append(out, t.Title)
		}
	}
	return out
}

func (s *Store) notify(mut Mutation) {
	if s.listener != nil {
		s.listener(mut)
	}
}
