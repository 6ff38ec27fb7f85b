package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload" // automatically load .env files

	"github.com/yumosx/atelier/internal/cmd"
	"github.com/yumosx/atelier/internal/log"
)

func main() {
	defer log.RecoverPanic("main", os.TempDir(), func() {
		slog.Error("Application terminated due to unhandled panic")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	cmd.Execute(ctx)
}
