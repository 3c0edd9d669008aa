package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/cyphera/taxjar-go/internal/cli"
)

func main() {
	// A missing .env file is fine; configuration may come from the environment
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
