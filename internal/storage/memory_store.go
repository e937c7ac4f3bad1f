package storage

import (
	"context"
	"sync"
	"time"
)

// Task mirrors the bot-level task record for storage backends.
type Task struct {
	ID        string
	Text      string
	Created   time.Time
	Completed bool
}

// MemoryStore keeps per-user task lists in process memory, guarded by a
// single mutex so concurrent webhook invocations cannot corrupt a list.
// A restart loses everything; use the Firestore backend when that matters.
type MemoryStore struct {
	mu    sync.Mutex
	tasks map[int64][]Task
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tasks: make(map[int64][]Task)}
}

func (m *MemoryStore) AddTask(_ context.Context, userID int64, task Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[userID] = append(m.tasks[userID], task)
	return nil
}

// ListTasks returns the user's tasks in insertion order.
func (m *MemoryStore) ListTasks(_ context.Context, userID int64) ([]Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Task, len(m.tasks[userID]))
	copy(out, m.tasks[userID])
	return out, nil
}

// CompleteTask marks the first task with a matching id as completed.
func (m *MemoryStore) CompleteTask(_ context.Context, userID int64, taskID string) (Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, task := range m.tasks[userID] {
		if task.ID == taskID {
			m.tasks[userID][i].Completed = true
			return m.tasks[userID][i], nil
		}
	}
	return Task{}, ErrTaskNotFound
}

// DeleteTask removes every task with the given id. Deleting an unknown id
// is not an error.
func (m *MemoryStore) DeleteTask(_ context.Context, userID int64, taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.tasks[userID][:0]
	for _, task := range m.tasks[userID] {
		if task.ID != taskID {
			kept = append(kept, task)
		}
	}
	m.tasks[userID] = kept
	return nil
}
