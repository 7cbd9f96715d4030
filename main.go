package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/haojie06/openai-image-http/internal/logger"
	"github.com/haojie06/openai-image-http/internal/openai"
	"github.com/haojie06/openai-image-http/internal/server"
	"github.com/lpernett/godotenv"
	"github.com/spf13/viper"
)

func main() {
	defer logger.Sync()
	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warnf("failed to load .env file: %s", err)
	}

	serverConfig, openaiConfig, err := loadConfig(viper.New())
	if err != nil {
		logger.Fatalf("failed to load config: %s", err)
	}
	// refuse to bind the listener without a token
	client, err := openai.NewClient(openaiConfig)
	if err != nil {
		logger.Fatalf("invalid openai config: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Infof("service is starting, host: %s, port: %s", serverConfig.Host, serverConfig.Port)
	if err := server.Start(ctx, serverConfig, client); err != nil {
		logger.Errorf("server stopped: %s", err)
		return
	}
	logger.Infof("server gracefully stopped")
}
