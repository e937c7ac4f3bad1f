package commands

import (
	"regexp"
	"strings"
)

// Kind identifies which handler a message routes to.
type Kind int

const (
	KindWelcome Kind = iota
	KindCalculator
	KindWeather
	KindTasks
	KindFun
	KindQR
	KindPassword
	KindPoll
	KindPick
	KindHelp
	KindMenu
)

// commandRoutes maps a normalized command word (the first whitespace token,
// lowercased) to its handler kind.
var commandRoutes = map[string]Kind{
	"calc":      KindCalculator,
	"calculate": KindCalculator,
	"math":      KindCalculator,

	"weather":  KindWeather,
	"forecast": KindWeather,

	"task":  KindTasks,
	"todo":  KindTasks,
	"tasks": KindTasks,

	"joke":  KindFun,
	"fun":   KindFun,
	"quote": KindFun,

	"qr":     KindQR,
	"qrcode": KindQR,

	"password": KindPassword,
	"pwd":      KindPassword,
	"generate": KindPassword,

	"poll": KindPoll,
	"vote": KindPoll,

	"pick":   KindPick,
	"choose": KindPick,
	"random": KindPick,

	"help": KindHelp,
	"?":    KindHelp,

	"menu": KindMenu,
}

// greetingWords match against the entire trimmed message, not just the
// first token, so "hello there" still falls through to the default route.
var greetingWords = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"start": {},
}

var bareExprPattern = regexp.MustCompile(`^[\d\+\-\*\/\(\)\.\s\^]+$`)

// Classify routes raw message text to a handler kind. It is pure and total:
// anything unrecognized falls back to the welcome response.
func Classify(text string) Kind {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return KindWelcome
	}

	word := strings.ToLower(strings.Fields(trimmed)[0])
	if kind, ok := commandRoutes[word]; ok {
		return kind
	}

	if _, ok := greetingWords[strings.ToLower(trimmed)]; ok {
		return KindWelcome
	}

	if isBareExpression(trimmed) {
		return KindCalculator
	}

	return KindWelcome
}

// isBareExpression reports whether a message with no command word still looks
// like arithmetic: digits, operators, parentheses and dots only, with at
// least one operator present.
func isBareExpression(text string) bool {
	return bareExprPattern.MatchString(text) && strings.ContainsAny(text, "+-*/^")
}
