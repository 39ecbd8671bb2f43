package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/example/vocaquiz/cmd"
)

func main() {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
