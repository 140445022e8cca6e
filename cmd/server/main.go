package main

import (
	"log"

	"github.com/joho/godotenv"

	"tankar/quote_backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}
	app.Run()
}
