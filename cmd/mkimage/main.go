package main

import (
	"github.com/joho/godotenv"

	"github.com/gorobot-library/traefik/pkg/cli"
)

func main() {
	// Local overrides for dev runs; harmless when no .env exists.
	_ = godotenv.Load()

	cli.Execute()
}
