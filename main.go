package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Support a lightweight migrate command: `./costmanager migrate`
	// It runs AutoMigrate and exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		cfg.AutoMigrate = true
		if _, err := openDB(cfg); err != nil {
			slog.Error("migration failed", "err", err)
			os.Exit(1)
		}
		fmt.Println("migration completed")
		return
	}

	db, err := openDB(cfg)
	if err != nil {
		slog.Error("failed to connect database", "err", err)
		os.Exit(1)
	}

	app := &App{DB: db}
	r := gin.Default()
	setupRoutes(r, app)

	slog.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
