package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

const (
	defaultPasswordLength = 12
	maxPasswordLength     = 50
)

func (h *Handler) cmdPassword(ctx context.Context, chatID int64, text string) error {
	_, rest := splitCommand(text)

	length := defaultPasswordLength
	if fields := strings.Fields(rest); len(fields) > 0 {
		// A non-numeric or negative argument is ignored, not an error.
		if n, err := strconv.Atoi(fields[0]); err == nil && n >= 0 {
			length = min(n, maxPasswordLength)
		}
	}

	password, err := generatePassword(length)
	if err != nil {
		h.deps.Logf("password generation failed: %v", err)
		return h.deps.SendMessage(ctx, chatID, "❌ Error generating password. Please try again.")
	}

	reply := fmt.Sprintf("🔐 **Secure Password Generated**\n\n`%s`\n\n"+
		"🛡️ Length: %d characters\n⚠️ Save this password securely!", password, length)
	return h.deps.SendMessage(ctx, chatID, reply)
}

// generatePassword draws every character independently from crypto/rand.
func generatePassword(length int) (string, error) {
	alphabetSize := big.NewInt(int64(len(passwordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		out[i] = passwordAlphabet[idx.Int64()]
	}
	return string(out), nil
}
