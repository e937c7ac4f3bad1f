package commands

import (
	"context"
	"time"
)

// Task is one to-do item. The id is a short random token unique within the
// owning user's list.
type Task struct {
	ID        string
	Text      string
	Created   time.Time
	Completed bool
}

// Dependencies is everything the command handlers need from the outside
// world: reply delivery, the task store, and a few injectable utilities.
type Dependencies interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMenuMessage(ctx context.Context, chatID int64, text string, quickActions []string) error
	SendPhotoMessage(ctx context.Context, chatID int64, caption string, png []byte) error

	AddTask(ctx context.Context, userID int64, task Task) error
	ListTasks(ctx context.Context, userID int64) ([]Task, error)
	CompleteTask(ctx context.Context, userID int64, taskID string) (Task, error)
	DeleteTask(ctx context.Context, userID int64, taskID string) error
	IsTaskNotFound(err error) bool

	NewTaskID() string
	Now() time.Time
	RandIntn(n int) int
	Logf(format string, args ...any)
}
