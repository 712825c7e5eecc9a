package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/tcg-tournament-api/cmd/app"
)

// @title           TCG Tournament API
// @version         1.0
// @description     Cards, decks, players, events and results of trading card game tournaments.
//
// @contact.name   API Support
//
// @license.name  MIT
//
// @BasePath  /
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
