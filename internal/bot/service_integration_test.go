package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"telegram-productivity-bot/internal/telegram"
)

type fakeSender struct {
	messages  map[int64][]string
	keyboards map[int64][][]string
	photos    map[int64][][]byte
	failSends bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		messages:  make(map[int64][]string),
		keyboards: make(map[int64][][]string),
		photos:    make(map[int64][][]byte),
	}
}

func (f *fakeSender) SendMessage(_ context.Context, chatID int64, text string) error {
	f.messages[chatID] = append(f.messages[chatID], text)
	return nil
}

func (f *fakeSender) SendRichMessage(_ context.Context, chatID int64, text string) error {
	if f.failSends {
		return errors.New("send failed")
	}
	f.messages[chatID] = append(f.messages[chatID], text)
	return nil
}

func (f *fakeSender) SendKeyboardMessage(_ context.Context, chatID int64, text string, buttons []string) error {
	f.messages[chatID] = append(f.messages[chatID], text)
	f.keyboards[chatID] = append(f.keyboards[chatID], buttons)
	return nil
}

func (f *fakeSender) SendPhoto(_ context.Context, chatID int64, caption string, png []byte) error {
	f.messages[chatID] = append(f.messages[chatID], caption)
	f.photos[chatID] = append(f.photos[chatID], png)
	return nil
}

type memoryTaskStore struct {
	mu    sync.Mutex
	tasks map[int64][]Task
	err   error
}

func newMemoryTaskStore() *memoryTaskStore {
	return &memoryTaskStore{tasks: make(map[int64][]Task)}
}

func (m *memoryTaskStore) AddTask(_ context.Context, userID int64, task Task) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[userID] = append(m.tasks[userID], task)
	return nil
}

func (m *memoryTaskStore) ListTasks(_ context.Context, userID int64) ([]Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Task, len(m.tasks[userID]))
	copy(out, m.tasks[userID])
	return out, nil
}

func (m *memoryTaskStore) CompleteTask(_ context.Context, userID int64, taskID string) (Task, error) {
	if m.err != nil {
		return Task{}, m.err
	}
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

func (m *memoryTaskStore) DeleteTask(_ context.Context, userID int64, taskID string) error {
	if m.err != nil {
		return m.err
	}
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

const testBotID = int64(999)

func newTestService(sender *fakeSender, store TaskStore) *Service {
	return NewService(
		log.New(bytes.NewBuffer(nil), "", 0),
		sender,
		store,
		"webhook-secret",
		testBotID,
	)
}

func callWebhook(t *testing.T, svc *Service, path string, update telegram.Update) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	svc.WebhookHandler(rec, req)
	return rec
}

func textUpdate(chatID, userID int64, text string) telegram.Update {
	return telegram.Update{Message: &telegram.Message{
		Text: text,
		From: telegram.User{ID: userID},
		Chat: telegram.Chat{ID: chatID},
	}}
}

func TestWebhookTaskFlowWithPerUserIsolation(t *testing.T) {
	sender := newFakeSender()
	svc := newTestService(sender, newMemoryTaskStore())

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "task add Buy milk"))
	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "task list"))
	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(2, 20, "task list"))

	user1 := sender.messages[1]
	if len(user1) != 2 {
		t.Fatalf("expected 2 replies to chat 1, got %d", len(user1))
	}
	if !strings.Contains(user1[0], "Task Added") {
		t.Fatalf("expected add confirmation, got: %s", user1[0])
	}
	if !strings.Contains(user1[1], "Buy milk") || !strings.Contains(user1[1], "1 pending, 0 completed") {
		t.Fatalf("expected listing with pending count, got: %s", user1[1])
	}

	user2 := sender.messages[2]
	if len(user2) != 1 {
		t.Fatalf("expected 1 reply to chat 2, got %d", len(user2))
	}
	if strings.Contains(user2[0], "Buy milk") {
		t.Fatalf("user isolation broken, another user sees the task: %s", user2[0])
	}
}

func TestWebhookCompleteFlow(t *testing.T) {
	sender := newFakeSender()
	store := newMemoryTaskStore()
	svc := newTestService(sender, store)

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "task add Water plants"))

	tasks, _ := store.ListTasks(context.Background(), 10)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 stored task, got %d", len(tasks))
	}

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "task complete "+tasks[0].ID))
	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "task list"))

	final := sender.messages[1][len(sender.messages[1])-1]
	if !strings.Contains(final, "0 pending, 1 completed") {
		t.Fatalf("expected task to move to completed, got: %s", final)
	}

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "task complete zzz999"))
	notFound := sender.messages[1][len(sender.messages[1])-1]
	if !strings.Contains(notFound, "not found") {
		t.Fatalf("expected not-found reply, got: %s", notFound)
	}
}

func TestWebhookBareExpressionRoutesToCalculator(t *testing.T) {
	sender := newFakeSender()
	svc := newTestService(sender, newMemoryTaskStore())

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "5 + 3 * 2"))

	replies := sender.messages[1]
	if len(replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(replies))
	}
	if !strings.Contains(replies[0], "<b>11</b>") {
		t.Fatalf("expected 11 with standard precedence, got: %s", replies[0])
	}
}

func TestWebhookChainedMultiplicationKeepsCodeSpanIntact(t *testing.T) {
	sender := newFakeSender()
	svc := newTestService(sender, newMemoryTaskStore())

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "calc 2*3*4"))

	replies := sender.messages[1]
	if len(replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(replies))
	}
	if !strings.Contains(replies[0], "<code>2*3*4</code>") {
		t.Fatalf("expected literal expression in code span, got: %s", replies[0])
	}
	if strings.Contains(replies[0], "<i>") {
		t.Fatalf("italic tag leaked into reply: %s", replies[0])
	}
}

func TestWebhookEmptyAndUnknownMessagesGetWelcome(t *testing.T) {
	sender := newFakeSender()
	svc := newTestService(sender, newMemoryTaskStore())

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, ""))
	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "xyz123"))

	replies := sender.messages[1]
	if len(replies) != 2 {
		t.Fatalf("expected 2 replies, got %d", len(replies))
	}
	for _, reply := range replies {
		if !strings.Contains(reply, "Welcome to Productivity Bot") {
			t.Fatalf("expected welcome reply, got: %s", reply)
		}
	}
}

func TestWebhookRejectsBadRequests(t *testing.T) {
	sender := newFakeSender()
	svc := newTestService(sender, newMemoryTaskStore())

	rec := callWebhook(t, svc, "/webhook/wrong-secret", textUpdate(1, 10, "hi"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong secret, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/webhook/webhook-secret", nil)
	getRec := httptest.NewRecorder()
	svc.WebhookHandler(getRec, req)
	if getRec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET, got %d", getRec.Code)
	}

	if len(sender.messages[1]) != 0 {
		t.Fatalf("rejected requests must not produce replies")
	}
}

func TestMemberJoinedWelcomesEachNonBotMember(t *testing.T) {
	sender := newFakeSender()
	svc := newTestService(sender, newMemoryTaskStore())

	update := telegram.Update{Message: &telegram.Message{
		Chat: telegram.Chat{ID: 5},
		NewChatMembers: []telegram.User{
			{ID: testBotID, IsBot: true},
			{ID: 71},
			{ID: 72},
		},
	}}
	callWebhook(t, svc, "/webhook/webhook-secret", update)

	replies := sender.messages[5]
	if len(replies) != 2 {
		t.Fatalf("expected a welcome per non-bot member, got %d replies", len(replies))
	}
	for _, reply := range replies {
		if !strings.Contains(reply, "Welcome to Productivity Bot") {
			t.Fatalf("expected welcome reply, got: %s", reply)
		}
	}
}

func TestStoreFailureProducesGenericErrorReply(t *testing.T) {
	sender := newFakeSender()
	store := newMemoryTaskStore()
	store.err = errors.New("backend unavailable")
	svc := newTestService(sender, store)

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "task add Buy milk"))

	replies := sender.messages[1]
	if len(replies) != 1 {
		t.Fatalf("expected exactly one reply, got %d", len(replies))
	}
	if !strings.Contains(replies[0], "Oops") {
		t.Fatalf("expected generic error reply, got: %s", replies[0])
	}
	if strings.Contains(replies[0], "backend unavailable") {
		t.Fatalf("internal error detail leaked to the caller: %s", replies[0])
	}
}

func TestMenuSendsQuickActionKeyboard(t *testing.T) {
	sender := newFakeSender()
	svc := newTestService(sender, newMemoryTaskStore())

	callWebhook(t, svc, "/webhook/webhook-secret", textUpdate(1, 10, "menu"))

	if len(sender.keyboards[1]) != 1 {
		t.Fatalf("expected one keyboard, got %d", len(sender.keyboards[1]))
	}
	buttons := sender.keyboards[1][0]
	if len(buttons) != 4 {
		t.Fatalf("expected 4 quick actions, got %v", buttons)
	}
	if !strings.Contains(sender.messages[1][0], "Productivity Bot Menu") {
		t.Fatalf("keyboard message must carry the text fallback, got: %s", sender.messages[1][0])
	}
}
