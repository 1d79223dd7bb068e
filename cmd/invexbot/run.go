package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/invexlabs/invexbot/pkg/advisor"
	"github.com/invexlabs/invexbot/pkg/bus"
	"github.com/invexlabs/invexbot/pkg/channels"
	"github.com/invexlabs/invexbot/pkg/config"
	"github.com/invexlabs/invexbot/pkg/cron"
	"github.com/invexlabs/invexbot/pkg/logger"
)

func newRunCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Discord gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logger.SetLevel(logger.DEBUG)
			}
			return runGateway()
		},
	}
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

func runGateway() error {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := validateRuntimeConfig(cfg, true); err != nil {
		return err
	}

	engine, conv, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	msgBus := bus.NewMessageBus()
	loop := advisor.NewLoop(msgBus, engine)

	sweeper, err := cron.NewSweeper(cfg.Advisor.SweepSchedule, conv.Sweep)
	if err != nil {
		return fmt.Errorf("session sweeper: %w", err)
	}

	manager, err := channels.NewManager(cfg, msgBus, engine)
	if err != nil {
		return fmt.Errorf("channel manager: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.StartAll(ctx); err != nil {
		return fmt.Errorf("start channels: %w", err)
	}

	go func() {
		if err := loop.Run(ctx); err != nil {
			logger.ErrorCF("gateway", "Advisor loop exited", map[string]any{"error": err.Error()})
		}
	}()
	go sweeper.Run(ctx)

	fmt.Printf("✓ Channels enabled: %s\n", strings.Join(manager.EnabledChannels(), ", "))
	fmt.Println("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")
	cancel()
	loop.Stop()
	if err := manager.StopAll(context.Background()); err != nil {
		logger.WarnCF("gateway", "Channel shutdown reported errors", map[string]any{"error": err.Error()})
	}
	msgBus.Close()
	fmt.Println("✓ Gateway stopped")

	return nil
}
