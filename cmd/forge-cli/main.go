// Package main provides the forge-cli tool for streaming replies from a
// Forge server to the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/forgelabs/forge-go-sdk/pkg/client"
	"github.com/forgelabs/forge-go-sdk/pkg/core/events"
)

func main() {
	var (
		server       = flag.String("server", os.Getenv("FORGE_SERVER"), "base URL of the Forge server (or FORGE_SERVER)")
		conversation = flag.String("conversation", "", "conversation to continue (optional)")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	prompt := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: forge-cli [flags] <prompt>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	c, err := client.New(client.Config{BaseURL: *server, Logger: logger})
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	// Ctrl-C abandons the stream.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := c.StreamMessage(ctx, client.MessageRequest{
		ConversationID: *conversation,
		Prompt:         prompt,
	}, client.Handlers{
		OnText: func(text string) error {
			fmt.Print(text)
			return nil
		},
		OnArtifact: func(artifact events.Artifact) error {
			logger.WithFields(logrus.Fields{
				"id":    artifact.ID,
				"title": artifact.Title,
				"url":   artifact.StorageURL,
			}).Info("artifact available")
			return nil
		},
		OnBuildStatus: func(status events.BuildStatus) error {
			logger.WithFields(logrus.Fields{
				"status":  status.Status,
				"buildId": status.BuildID,
			}).Info("build update")
			return nil
		},
	})
	fmt.Println()
	if err != nil {
		logger.WithError(err).Fatal("stream failed")
	}

	if result != nil {
		logger.WithFields(logrus.Fields{
			"conversationId": result.ConversationID,
			"messageId":      result.MessageID,
		}).Debug("stream completed")
	}
}
