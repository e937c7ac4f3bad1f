package bot

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"telegram-productivity-bot/internal/bot/commands"
	"telegram-productivity-bot/internal/telegram"
)

const genericErrorText = "🔧 Oops! I encountered an error. Please try again or type 'help' for assistance."

type Service struct {
	logger         *log.Logger
	tgClient       MessageSender
	store          TaskStore
	commandHandler *commands.Handler
	webhookSecret  string
	botID          int64
	nowFn          func() time.Time
	randFn         func(n int) int

	sessionsMu sync.Mutex
	sessions   map[int64]*Session
}

func NewService(
	logger *log.Logger,
	tgClient MessageSender,
	store TaskStore,
	webhookSecret string,
	botID int64,
) *Service {
	svc := &Service{
		logger:        logger,
		tgClient:      tgClient,
		store:         store,
		webhookSecret: webhookSecret,
		botID:         botID,
		nowFn:         time.Now,
		randFn:        rand.Intn,
		sessions:      make(map[int64]*Session),
	}
	svc.commandHandler = newCommandHandler(svc)
	return svc
}

func (s *Service) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/webhook/"+s.webhookSecret {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	defer r.Body.Close()

	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	if update.Message != nil {
		if len(update.Message.NewChatMembers) > 0 {
			s.handleMembersJoined(r.Context(), *update.Message)
		} else {
			s.handleMessage(r.Context(), *update.Message)
		}
	}

	w.WriteHeader(http.StatusOK)
}

// handleMessage runs the classify-dispatch-reply cycle for one inbound
// message. It is the last line of defense: any handler error or panic is
// logged with detail and collapsed into one generic friendly reply.
func (s *Service) handleMessage(ctx context.Context, msg telegram.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	if userID == 0 {
		userID = chatID
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("panic handling message for user %d: %v", userID, r)
			s.sendErrorReply(ctx, chatID)
		}
	}()

	text := strings.TrimSpace(msg.Text)
	s.logger.Printf("user %d sent: %s", userID, text)
	s.recordSession(userID, text)

	if err := s.commandHandler.Handle(ctx, chatID, userID, text); err != nil {
		s.logger.Printf("handle message failed for user %d: %v", userID, err)
		s.sendErrorReply(ctx, chatID)
	}
}

// handleMembersJoined greets each new chat member once, skipping the bot's
// own join event.
func (s *Service) handleMembersJoined(ctx context.Context, msg telegram.Message) {
	for _, member := range msg.NewChatMembers {
		if member.ID == s.botID {
			continue
		}
		if err := s.tgClient.SendRichMessage(ctx, msg.Chat.ID, renderMarkdown(commands.WelcomeText)); err != nil {
			s.logger.Printf("welcome for member %d failed: %v", member.ID, err)
		}
	}
}

func (s *Service) sendErrorReply(ctx context.Context, chatID int64) {
	if err := s.tgClient.SendMessage(ctx, chatID, genericErrorText); err != nil {
		s.logger.Printf("error reply delivery failed for chat %d: %v", chatID, err)
	}
}

func (s *Service) recordSession(userID int64, text string) {
	word := ""
	if fields := strings.Fields(text); len(fields) > 0 {
		word = strings.ToLower(fields[0])
	}

	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		session = &Session{Context: make(map[string]string)}
		s.sessions[userID] = session
	}
	session.LastCommand = word
	session.UpdatedAt = s.nowFn()
}
