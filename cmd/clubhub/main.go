package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"clubhub/internal/app"
	"clubhub/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()

	application, err := app.New(log)
	if err != nil {
		log.Critical("startup failed", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Critical("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		log.Info("signal received", "signal", sig.String())
		if err := application.Shutdown(context.Background()); err != nil {
			log.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
