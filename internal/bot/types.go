package bot

import (
	"context"
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is one to-do item owned by a single user. IDs are short random
// tokens, unique within the owning user's list.
type Task struct {
	ID        string
	Text      string
	Created   time.Time
	Completed bool
}

// Session tracks light per-user interaction state. Nothing reads it back
// today; it exists so richer multi-turn flows can build on it later.
type Session struct {
	LastCommand string
	Context     map[string]string
	UpdatedAt   time.Time
}

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendRichMessage(ctx context.Context, chatID int64, text string) error
	SendKeyboardMessage(ctx context.Context, chatID int64, text string, buttons []string) error
	SendPhoto(ctx context.Context, chatID int64, caption string, png []byte) error
}

// TaskStore is the narrow persistence surface for per-user task lists.
// Implementations must be safe for concurrent use.
type TaskStore interface {
	AddTask(ctx context.Context, userID int64, task Task) error
	ListTasks(ctx context.Context, userID int64) ([]Task, error)
	CompleteTask(ctx context.Context, userID int64, taskID string) (Task, error)
	DeleteTask(ctx context.Context, userID int64, taskID string) error
}
