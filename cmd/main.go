package main

import (
	"log/slog"
	"os"

	"github.com/nutrivision/backend/config"
	"github.com/nutrivision/backend/routes"
	"github.com/nutrivision/backend/utils"
)

func main() {
	config.Load()
	config.SetupLogging()

	// A misconfigured gateway disables itself; the process always serves.
	if err := config.InitDB(); err != nil {
		slog.Error("database init failed, persistence disabled", "error", err)
	}
	utils.InitS3()

	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
