package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"discord-webhook-relay/config"
	"discord-webhook-relay/function"
	"discord-webhook-relay/logger"
)

var log = logger.New("discord-notify")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Error loading config: %v", err)
		os.Exit(1)
	}
	if err := logger.Setup(cfg.LogLevel); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	handler, err := function.NewHandler(cfg)
	if err != nil {
		log.Errorf("Error creating handler: %v", err)
		os.Exit(1)
	}

	lambda.Start(handler.Handle)
}
