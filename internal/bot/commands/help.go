package commands

import "context"

func (h *Handler) cmdHelp(ctx context.Context, chatID int64) error {
	return h.deps.SendMessage(ctx, chatID, helpText)
}

func (h *Handler) cmdWelcome(ctx context.Context, chatID int64) error {
	return h.deps.SendMessage(ctx, chatID, WelcomeText)
}

// cmdMenu sends the quick-action keyboard. The message body doubles as the
// plain-text fallback for clients that drop the keyboard.
func (h *Handler) cmdMenu(ctx context.Context, chatID int64) error {
	return h.deps.SendMenuMessage(ctx, chatID, menuText, menuQuickActions)
}

// Tapping a quick action sends its label back through the normal router.
var menuQuickActions = []string{
	"calc 2 + 2",
	"weather Sydney",
	"task list",
	"joke",
}

const menuText = "🤖 **Productivity Bot Menu**\n\n" +
	"Here are some things you can try:\n" +
	"• `calc 5 * 8` - Calculator\n" +
	"• `weather Sydney` - Weather info\n" +
	"• `task list` - Your tasks\n" +
	"• `joke` - Get a laugh!"

// WelcomeText is the default reply and doubles as the greeting for members
// joining a chat.
const WelcomeText = `🤖 **Welcome to Productivity Bot!**

I'm your AI-powered assistant with superpowers! Here's what I can do:

🧮 **Calculator** - ` + "`calc 2^3 + sqrt(16)`" + `
🌤️ **Weather** - ` + "`weather Sydney`" + ` or ` + "`forecast Melbourne`" + `
📝 **Tasks** - ` + "`task add Buy groceries`" + `
😄 **Fun** - ` + "`joke`" + ` or ` + "`quote`" + `
📱 **QR Codes** - ` + "`qr https://example.com`" + `
🔐 **Passwords** - ` + "`password 16`" + `
📊 **Polls** - ` + "`poll Favorite food? Pizza, Burger`" + `
🎲 **Random** - ` + "`pick Alice, Bob, Charlie`" + `

💡 **Quick Tips:**
• Type ` + "`menu`" + ` for interactive options
• Type ` + "`help`" + ` for detailed commands
• Just type math expressions like ` + "`5 + 3 * 2`" + `

**Ready to boost your productivity? Let's go! 🚀**`

const helpText = `🆘 **Productivity Bot - Complete Command Guide**

**🧮 CALCULATOR**
• ` + "`calc 5 + 3 * 2`" + ` - Basic math
• ` + "`calc sqrt(16) + 2^3`" + ` - Advanced functions
• ` + "`calc sin(45 * pi / 180)`" + ` - Trigonometry
• Or just type: ` + "`5 + 3 * 2`" + `

**🌤️ WEATHER**
• ` + "`weather Sydney`" + ` - Current weather
• ` + "`forecast Melbourne`" + ` - 5-day forecast

**📝 TASK MANAGEMENT**
• ` + "`task add Buy milk`" + ` - Add new task
• ` + "`task list`" + ` - Show all tasks
• ` + "`task complete abc123`" + ` - Complete task
• ` + "`task delete abc123`" + ` - Delete task

**😄 FUN & GAMES**
• ` + "`joke`" + ` - Random programming joke
• ` + "`quote`" + ` - Inspirational quote

**🔧 PRODUCTIVITY TOOLS**
• ` + "`qr https://example.com`" + ` - Generate QR code
• ` + "`password 16`" + ` - Generate secure password
• ` + "`poll Question? Option1, Option2`" + ` - Create poll
• ` + "`pick Alice, Bob, Charlie`" + ` - Random picker

**ℹ️ GENERAL**
• ` + "`help`" + ` - This help message
• ` + "`menu`" + ` - Interactive menu
• ` + "`hi`" + ` - Welcome message

**💡 Pro Tips:**
• Commands are case-insensitive
• You can chain math operations
• Task IDs are shown when you create tasks
• Weather data updates in real-time

Need specific help? Just ask! 🤝`
