package commands

import (
	"context"
	"strings"
)

type Handler struct {
	deps Dependencies
}

func NewHandler(deps Dependencies) *Handler {
	return &Handler{deps: deps}
}

// Handle classifies the message and runs the matching handler. chatID is the
// reply destination; userID scopes the task store.
func (h *Handler) Handle(ctx context.Context, chatID, userID int64, text string) error {
	text = strings.TrimSpace(text)

	switch Classify(text) {
	case KindCalculator:
		if !startsWithCommandWord(text, KindCalculator) {
			// Bare arithmetic like "5 + 3 * 2" reuses the calc path.
			text = "calc " + text
		}
		return h.cmdCalculator(ctx, chatID, text)
	case KindWeather:
		return h.cmdWeather(ctx, chatID, text)
	case KindTasks:
		return h.cmdTasks(ctx, chatID, userID, text)
	case KindFun:
		return h.cmdFun(ctx, chatID, text)
	case KindQR:
		return h.cmdQRCode(ctx, chatID, text)
	case KindPassword:
		return h.cmdPassword(ctx, chatID, text)
	case KindPoll:
		return h.cmdPoll(ctx, chatID, text)
	case KindPick:
		return h.cmdRandomPick(ctx, chatID, text)
	case KindHelp:
		return h.cmdHelp(ctx, chatID)
	case KindMenu:
		return h.cmdMenu(ctx, chatID)
	default:
		return h.cmdWelcome(ctx, chatID)
	}
}

func startsWithCommandWord(text string, kind Kind) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	routed, ok := commandRoutes[strings.ToLower(fields[0])]
	return ok && routed == kind
}
