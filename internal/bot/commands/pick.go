package commands

import (
	"context"
	"fmt"
	"strings"
)

const pickUsageText = "🎲 **Random Picker**\n\n" +
	"• `pick Alice, Bob, Charlie` - Pick from names\n" +
	"• `choose Pizza, Burger, Sushi` - Choose from options"

func (h *Handler) cmdRandomPick(ctx context.Context, chatID int64, text string) error {
	_, rest := splitCommand(text)
	if rest == "" {
		return h.deps.SendMessage(ctx, chatID, pickUsageText)
	}

	options := splitOptions(rest)
	if len(options) < 2 {
		return h.deps.SendMessage(ctx, chatID,
			"🎯 Please provide at least 2 options separated by commas.")
	}

	chosen := options[h.deps.RandIntn(len(options))]

	reply := fmt.Sprintf("🎲 **Random Selection Results**\n\n"+
		"🎯 **Winner**: **%s**!\n\n📝 Chosen from: %s", chosen, strings.Join(options, ", "))
	return h.deps.SendMessage(ctx, chatID, reply)
}
