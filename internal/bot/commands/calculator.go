package commands

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"telegram-productivity-bot/internal/mathexpr"
)

const calculatorUsageText = "🧮 **Calculator Usage:**\n\n" +
	"• `calc 5 + 3 * 2` - Basic arithmetic\n" +
	"• `calc sqrt(16)` - Square root\n" +
	"• `calc sin(30)` - Trigonometry\n" +
	"• `calc log(100)` - Logarithm\n" +
	"• `calc 2^3` - Power operations"

const invalidExpressionText = "❌ **Invalid Expression**\n\n" +
	"Please check your math expression. Examples:\n" +
	"• `calc 2 + 3 * 4`\n" +
	"• `calc sqrt(25)`\n" +
	"• `calc sin(45 * pi / 180)`"

const scientificNotationThreshold = 1000000

var factAliasPattern = regexp.MustCompile(`\bfact\(`)

func (h *Handler) cmdCalculator(ctx context.Context, chatID int64, text string) error {
	_, expr := splitCommand(strings.ToLower(text))
	if expr == "" {
		return h.deps.SendMessage(ctx, chatID, calculatorUsageText)
	}

	canonical := factAliasPattern.ReplaceAllString(expr, "factorial(")

	result, err := mathexpr.Eval(canonical)
	if err != nil {
		h.deps.Logf("calculator rejected %q: %v", expr, err)
		return h.deps.SendMessage(ctx, chatID, invalidExpressionText)
	}

	reply := fmt.Sprintf("🧮 **Calculator Result**\n\n`%s` = **%s**", expr, formatResult(result))
	if math.Abs(result) > scientificNotationThreshold {
		reply += fmt.Sprintf("\n\n📊 That's approximately **%.2e** in scientific notation", result)
	}

	return h.deps.SendMessage(ctx, chatID, reply)
}

// formatResult renders whole numbers without a fractional part, everything
// else rounded to 6 decimal places.
func formatResult(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	rounded := math.Round(v*1e6) / 1e6
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
