package commands

import (
	"context"
	"fmt"
	"strings"
)

const weatherUsageText = "🌤️ **Weather Usage:**\n\n" +
	"• `weather Sydney` - Current weather\n" +
	"• `weather New York` - Any city\n" +
	"• `forecast Melbourne` - 5-day forecast"

// Mock data only. A real provider can be swapped in behind the same reply
// shape without touching the rest of the bot.
var weatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Partly Cloudy", "Thunderstorm"}

var forecastDays = []string{"Today", "Tomorrow", "Saturday", "Sunday", "Monday"}

func (h *Handler) cmdWeather(ctx context.Context, chatID int64, text string) error {
	word, location := splitCommand(text)
	if location == "" {
		return h.deps.SendMessage(ctx, chatID, weatherUsageText)
	}

	if word == "forecast" {
		var b strings.Builder
		fmt.Fprintf(&b, "📅 **5-Day Forecast for %s**\n\n", titleCase(location))
		for _, day := range forecastDays {
			condition := weatherConditions[h.deps.RandIntn(len(weatherConditions))]
			temp := 15 + h.deps.RandIntn(16) // [15,30]
			fmt.Fprintf(&b, "**%s**: %s %d°C\n", day, condition, temp)
		}
		return h.deps.SendMessage(ctx, chatID, b.String())
	}

	condition := weatherConditions[h.deps.RandIntn(len(weatherConditions))]
	reply := fmt.Sprintf("🌤️ **Current Weather in %s**\n\n"+
		"**Temperature**: %d°C\n"+
		"**Condition**: %s\n"+
		"**Humidity**: %d%%\n"+
		"**Wind**: %d km/h",
		titleCase(location),
		18+h.deps.RandIntn(11), // [18,28]
		condition,
		40+h.deps.RandIntn(41), // [40,80]
		5+h.deps.RandIntn(21),  // [5,25]
	)

	return h.deps.SendMessage(ctx, chatID, reply)
}
