package adapters

import (
	"context"
	"errors"

	"telegram-productivity-bot/internal/bot"
	"telegram-productivity-bot/internal/storage"
)

// TaskBackend is the shape both storage implementations share.
type TaskBackend interface {
	AddTask(ctx context.Context, userID int64, task storage.Task) error
	ListTasks(ctx context.Context, userID int64) ([]storage.Task, error)
	CompleteTask(ctx context.Context, userID int64, taskID string) (storage.Task, error)
	DeleteTask(ctx context.Context, userID int64, taskID string) error
}

func NewTaskStore(backend TaskBackend) bot.TaskStore {
	return &taskStore{backend: backend}
}

type taskStore struct {
	backend TaskBackend
}

func (s *taskStore) AddTask(ctx context.Context, userID int64, task bot.Task) error {
	return s.backend.AddTask(ctx, userID, mapTaskOut(task))
}

func (s *taskStore) ListTasks(ctx context.Context, userID int64) ([]bot.Task, error) {
	items, err := s.backend.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]bot.Task, 0, len(items))
	for _, item := range items {
		out = append(out, mapTaskIn(item))
	}
	return out, nil
}

func (s *taskStore) CompleteTask(ctx context.Context, userID int64, taskID string) (bot.Task, error) {
	item, err := s.backend.CompleteTask(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return bot.Task{}, bot.ErrTaskNotFound
		}
		return bot.Task{}, err
	}
	return mapTaskIn(item), nil
}

func (s *taskStore) DeleteTask(ctx context.Context, userID int64, taskID string) error {
	return s.backend.DeleteTask(ctx, userID, taskID)
}

func mapTaskIn(in storage.Task) bot.Task {
	return bot.Task{
		ID:        in.ID,
		Text:      in.Text,
		Created:   in.Created,
		Completed: in.Completed,
	}
}

func mapTaskOut(in bot.Task) storage.Task {
	return storage.Task{
		ID:        in.ID,
		Text:      in.Text,
		Created:   in.Created,
		Completed: in.Completed,
	}
}
