package main

import (
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/internal/cli"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	cli.Execute()
}
