package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/keikurono7/major-project/cmd"
)

func main() {
	// Local .env files carry provider keys during development; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
