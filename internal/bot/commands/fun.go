package commands

import (
	"context"
	"fmt"
)

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything! 🤓",
	"Why did the developer go broke? Because he used up all his cache! 💰",
	"How do you comfort a JavaScript bug? You console it! 🐛",
	"Why do programmers prefer dark mode? Because light attracts bugs! 🌙",
	"What's a computer's favorite beat? An algo-rhythm! 🎵",
}

var quotes = []string{
	`"The only way to do great work is to love what you do." - Steve Jobs`,
	`"Innovation distinguishes between a leader and a follower." - Steve Jobs`,
	`"Code is like humor. When you have to explain it, it's bad." - Cory House`,
	`"First, solve the problem. Then, write the code." - John Johnson`,
	`"Experience is the name everyone gives to their mistakes." - Oscar Wilde`,
}

func (h *Handler) cmdFun(ctx context.Context, chatID int64, text string) error {
	word, _ := splitCommand(text)

	switch word {
	case "joke":
		joke := jokes[h.deps.RandIntn(len(jokes))]
		return h.deps.SendMessage(ctx, chatID,
			fmt.Sprintf("😄 **Here's a joke for you:**\n\n%s", joke))
	case "quote":
		quote := quotes[h.deps.RandIntn(len(quotes))]
		return h.deps.SendMessage(ctx, chatID,
			fmt.Sprintf("💡 **Inspirational Quote:**\n\n%s", quote))
	default:
		return h.deps.SendMessage(ctx, chatID,
			"🎉 **Fun Commands:**\n\n• `joke` - Get a random joke\n• `quote` - Get an inspirational quote")
	}
}
