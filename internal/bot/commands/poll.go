package commands

import (
	"context"
	"fmt"
	"strings"
)

const pollUsageText = "📊 **Poll Creator**\n\n" +
	"• `poll What's your favorite color? Red, Blue, Green`\n" +
	"• `poll Should we have pizza for lunch? Yes, No, Maybe`"

const maxPollOptions = 10

func (h *Handler) cmdPoll(ctx context.Context, chatID int64, text string) error {
	_, content := splitCommand(text)
	if content == "" {
		return h.deps.SendMessage(ctx, chatID, pollUsageText)
	}

	question, optionsPart, found := strings.Cut(content, "?")
	if !found {
		return h.deps.SendMessage(ctx, chatID,
			"❓ Please include a question followed by options separated by commas.")
	}

	options := splitOptions(optionsPart)
	if len(options) < 2 {
		return h.deps.SendMessage(ctx, chatID,
			"📊 Please provide at least 2 options separated by commas.")
	}
	if len(options) > maxPollOptions {
		options = options[:maxPollOptions]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Poll Created!**\n\n**%s?**\n\n", strings.TrimSpace(question))
	for i, option := range options {
		fmt.Fprintf(&b, "%d️⃣ %s\n", i+1, option)
	}
	b.WriteString("\n👥 *React to this message to vote!*")

	return h.deps.SendMessage(ctx, chatID, b.String())
}
