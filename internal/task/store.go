package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Priority string

const (
	Low    Priority = "low"
	Normal Priority = "normal"
	High   Priority = "high"
)

type Task struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	Created     time.Time  `json:"created"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Line renders a task the way it is read back to the user:
// status marker, id, priority marker, description.
func (t Task) Line() string {
	status := "o"
	if t.Completed {
		status = "x"
	}
	marker := ""
	switch t.Priority {
	case High:
		marker = "! "
	case Low:
		marker = "- "
	}
	return fmt.Sprintf("%s [%d] %s%s", status, t.ID, marker, t.Description)
}

var (
	ErrNotFound    = errors.New("task not found")
	ErrAlreadyDone = errors.New("task already completed")
)

type document struct {
	Tasks       []Task    `json:"tasks"`
	LastUpdated time.Time `json:"last_updated"`
}

// Store keeps the task list in memory and writes the whole document back
// to disk on every mutation.
type Store struct {
	path  string
	tasks []Task
}

// Open loads the store from path. A missing file is not an error: the
// store just starts empty.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	s.tasks = doc.Tasks

	return s, nil
}

func (s *Store) save() error {
	doc := document{
		Tasks:       s.tasks,
		LastUpdated: time.Now(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

func (s *Store) Add(description string, priority Priority) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, errors.New("empty task description")
	}
	switch priority {
	case Low, Normal, High:
	default:
		priority = Normal
	}

	t := Task{
		ID:          len(s.tasks) + 1,
		Description: description,
		Priority:    priority,
		Created:     time.Now(),
	}
	s.tasks = append(s.tasks, t)

	if err := s.save(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// List returns the tasks in list order, skipping completed ones unless
// includeCompleted is set.
func (s *Store) List(includeCompleted bool) []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Completed && !includeCompleted {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Store) Count(includeCompleted bool) int {
	return len(s.List(includeCompleted))
}

func (s *Store) Complete(id int) (Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].Completed {
			return s.tasks[i], ErrAlreadyDone
		}
		now := time.Now()
		s.tasks[i].Completed = true
		s.tasks[i].CompletedAt = &now
		if err := s.save(); err != nil {
			return Task{}, err
		}
		return s.tasks[i], nil
	}
	return Task{}, ErrNotFound
}

// Delete removes a task and renumbers the remaining ones to a contiguous
// 1..N sequence in list order.
func (s *Store) Delete(id int) (Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		deleted := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		for j := range s.tasks {
			s.tasks[j].ID = j + 1
		}
		if err := s.save(); err != nil {
			return Task{}, err
		}
		return deleted, nil
	}
	return Task{}, ErrNotFound
}

// SplitPriority strips a spoken "high priority" / "low priority" prefix
// from a task description. Without a prefix the task is Normal.
func SplitPriority(description string) (Priority, string) {
	for _, p := range []Priority{High, Low, Normal} {
		prefix := string(p) + " priority "
		if strings.HasPrefix(description, prefix) {
			return p, strings.TrimSpace(strings.TrimPrefix(description, prefix))
		}
	}
	return Normal, description
}
