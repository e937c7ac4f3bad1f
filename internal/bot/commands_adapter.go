package bot

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"telegram-productivity-bot/internal/bot/commands"
)

const taskIDLength = 8

type commandDeps struct {
	service *Service
}

func newCommandHandler(service *Service) *commands.Handler {
	return commands.NewHandler(&commandDeps{service: service})
}

// Replies are authored as markdown-flavored text and rendered to Telegram
// HTML on the way out.
func (d *commandDeps) SendMessage(ctx context.Context, chatID int64, text string) error {
	return d.service.tgClient.SendRichMessage(ctx, chatID, renderMarkdown(text))
}

func (d *commandDeps) SendMenuMessage(ctx context.Context, chatID int64, text string, quickActions []string) error {
	return d.service.tgClient.SendKeyboardMessage(ctx, chatID, renderMarkdown(text), quickActions)
}

func (d *commandDeps) SendPhotoMessage(ctx context.Context, chatID int64, caption string, png []byte) error {
	return d.service.tgClient.SendPhoto(ctx, chatID, renderMarkdown(caption), png)
}

func (d *commandDeps) AddTask(ctx context.Context, userID int64, task commands.Task) error {
	return d.service.store.AddTask(ctx, userID, fromCommandTask(task))
}

func (d *commandDeps) ListTasks(ctx context.Context, userID int64) ([]commands.Task, error) {
	tasks, err := d.service.store.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]commands.Task, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toCommandTask(task))
	}
	return out, nil
}

func (d *commandDeps) CompleteTask(ctx context.Context, userID int64, taskID string) (commands.Task, error) {
	task, err := d.service.store.CompleteTask(ctx, userID, taskID)
	if err != nil {
		return commands.Task{}, err
	}
	return toCommandTask(task), nil
}

func (d *commandDeps) DeleteTask(ctx context.Context, userID int64, taskID string) error {
	return d.service.store.DeleteTask(ctx, userID, taskID)
}

func (d *commandDeps) IsTaskNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound)
}

func (d *commandDeps) NewTaskID() string {
	return uuid.NewString()[:taskIDLength]
}

func (d *commandDeps) Now() time.Time {
	return d.service.nowFn()
}

func (d *commandDeps) RandIntn(n int) int {
	return d.service.randFn(n)
}

func (d *commandDeps) Logf(format string, args ...any) {
	d.service.logger.Printf(format, args...)
}

func toCommandTask(task Task) commands.Task {
	return commands.Task{
		ID:        task.ID,
		Text:      task.Text,
		Created:   task.Created,
		Completed: task.Completed,
	}
}

func fromCommandTask(task commands.Task) Task {
	return Task{
		ID:        task.ID,
		Text:      task.Text,
		Created:   task.Created,
		Completed: task.Completed,
	}
}
