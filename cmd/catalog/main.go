package main

import (
	"os"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/logging"
)

func main() {
	logging.Setup(os.Getenv("APP_ENV"))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
