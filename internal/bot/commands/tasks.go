package commands

import (
	"context"
	"fmt"
	"strings"
)

const taskHelpText = `📝 **Task Management Commands**

**Add Tasks:**
• ` + "`task add Buy groceries`" + ` - Create a new task
• ` + "`task add Call dentist tomorrow`" + ` - Add task with details

**Manage Tasks:**
• ` + "`task list`" + ` - Show all your tasks
• ` + "`task complete abc123`" + ` - Mark task as complete
• ` + "`task delete abc123`" + ` - Delete a task

**Tips:**
• Each task gets a unique ID for easy management
• Use descriptive task names for better organization`

const emptyTaskListText = "📝 **Your Task List**\n\n" +
	"✨ No tasks yet! Use `task add <description>` to create your first task."

const maxCompletedShown = 5

const taskCreatedLayout = "2006-01-02 15:04"

func (h *Handler) cmdTasks(ctx context.Context, chatID, userID int64, text string) error {
	_, rest := splitCommand(text)
	if rest == "" {
		return h.deps.SendMessage(ctx, chatID, taskHelpText)
	}

	action, arg := splitCommand(rest)

	switch action {
	case "add":
		if arg == "" {
			return h.deps.SendMessage(ctx, chatID, taskHelpText)
		}
		task := Task{
			ID:      h.deps.NewTaskID(),
			Text:    arg,
			Created: h.deps.Now(),
		}
		if err := h.deps.AddTask(ctx, userID, task); err != nil {
			return fmt.Errorf("add task: %w", err)
		}
		return h.deps.SendMessage(ctx, chatID,
			fmt.Sprintf("✅ **Task Added!**\n\n📝 %s\n🆔 ID: `%s`", task.Text, task.ID))

	case "list":
		return h.sendTaskList(ctx, chatID, userID)

	case "complete":
		if arg == "" {
			return h.deps.SendMessage(ctx, chatID, taskHelpText)
		}
		taskID := strings.ToLower(arg)
		task, err := h.deps.CompleteTask(ctx, userID, taskID)
		if err != nil {
			if h.deps.IsTaskNotFound(err) {
				return h.deps.SendMessage(ctx, chatID,
					fmt.Sprintf("❌ Task with ID `%s` not found.", taskID))
			}
			return fmt.Errorf("complete task: %w", err)
		}
		return h.deps.SendMessage(ctx, chatID,
			fmt.Sprintf("🎉 **Task Completed!**\n\n✅ %s", task.Text))

	case "delete":
		if arg == "" {
			return h.deps.SendMessage(ctx, chatID, taskHelpText)
		}
		taskID := strings.ToLower(arg)
		// Deletion confirms whether or not the id existed.
		if err := h.deps.DeleteTask(ctx, userID, taskID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return h.deps.SendMessage(ctx, chatID,
			fmt.Sprintf("🗑️ **Task Deleted**\n\nTask `%s` has been removed.", taskID))

	default:
		return h.deps.SendMessage(ctx, chatID, taskHelpText)
	}
}

func (h *Handler) sendTaskList(ctx context.Context, chatID, userID int64) error {
	tasks, err := h.deps.ListTasks(ctx, userID)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	if len(tasks) == 0 {
		return h.deps.SendMessage(ctx, chatID, emptyTaskListText)
	}

	var pending, completed []Task
	for _, task := range tasks {
		if task.Completed {
			completed = append(completed, task)
		} else {
			pending = append(pending, task)
		}
	}

	var b strings.Builder
	b.WriteString("📝 **Your Task List**\n\n")

	if len(pending) > 0 {
		b.WriteString("**🔄 Pending Tasks:**\n")
		for _, task := range pending {
			fmt.Fprintf(&b, "• `%s` - %s _%s_\n", task.ID, task.Text, task.Created.Format(taskCreatedLayout))
		}
	}

	if len(completed) > 0 {
		b.WriteString("\n**✅ Completed Tasks:**\n")
		recent := completed
		if len(recent) > maxCompletedShown {
			recent = recent[len(recent)-maxCompletedShown:]
		}
		for _, task := range recent {
			fmt.Fprintf(&b, "• ~~%s~~ _%s_\n", task.Text, task.Created.Format(taskCreatedLayout))
		}
	}

	fmt.Fprintf(&b, "\n📊 **Stats**: %d pending, %d completed", len(pending), len(completed))

	return h.deps.SendMessage(ctx, chatID, b.String())
}
