package main

import (
	"techvista_backend/internal/app"
	"techvista_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
