package main

import "telegram-productivity-bot/internal/app"

func main() {
	app.Main()
}
