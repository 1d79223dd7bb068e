package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/invexlabs/invexbot/pkg/advisor"
	"github.com/invexlabs/invexbot/pkg/config"
	"github.com/invexlabs/invexbot/pkg/logger"
)

// localUserID keys the REPL's session in the conversation store.
const localUserID = "local-user"

func newChatCommand() *cobra.Command {
	var (
		debug   bool
		message string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the advisor in your terminal (no Discord needed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logger.SetLevel(logger.DEBUG)
			}
			return chat(message)
		},
	}
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Send a single message and exit")

	return cmd
}

func chat(oneShot string) error {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := validateRuntimeConfig(cfg, false); err != nil {
		return err
	}

	engine, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if oneShot != "" {
		reply, err := engine.Respond(ctx, localUserID, oneShot)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}

	return interactiveChat(ctx, engine)
}

func interactiveChat(ctx context.Context, engine *advisor.Engine) error {
	fmt.Println("Chatting with the reselling advisor. Type 'exit' to quit,")
	fmt.Println("or try /tips, /progress, /reset.")
	fmt.Println()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryFile:     filepath.Join(os.TempDir(), ".invexbot_chat_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		// Some terminals can't give readline a raw tty.
		return simpleChat(ctx, engine)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Println("Goodbye!")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if done := handleChatLine(ctx, engine, line); done {
			return nil
		}
	}
}

// simpleChat is the plain-stdin fallback when readline can't start.
func simpleChat(ctx context.Context, engine *advisor.Engine) error {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("You: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println("Goodbye!")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if done := handleChatLine(ctx, engine, line); done {
			return nil
		}
	}
}

// handleChatLine dispatches one REPL line. Returns true when the user
// asked to leave.
func handleChatLine(ctx context.Context, engine *advisor.Engine, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	switch strings.ToLower(input) {
	case "exit", "quit":
		fmt.Println("Goodbye!")
		return true
	case "/tips":
		sheet := engine.Tips(localUserID)
		fmt.Println(sheet.Title)
		for _, tip := range sheet.Lines {
			fmt.Println(tip)
		}
		fmt.Println()
		return false
	case "/progress":
		report := engine.Progress(localUserID)
		fmt.Println(report.Summary)
		if len(report.Goals) > 0 {
			fmt.Println()
			fmt.Println("Next goals:")
			for _, goal := range report.Goals {
				fmt.Println(goal)
			}
		}
		for _, badge := range report.NewBadges {
			fmt.Printf("🏆 %s\n", badge)
		}
		fmt.Println()
		return false
	case "/reset":
		engine.ResetProgress(localUserID)
		fmt.Println("Progress reset. Fresh start!")
		fmt.Println()
		return false
	}

	reply, err := engine.Respond(ctx, localUserID, input)
	if err != nil {
		var rateErr *advisor.RateLimitError
		if errors.As(err, &rateErr) {
			fmt.Printf("Slow down a little! Try again in %d seconds.\n\n", int(rateErr.RetryAfter.Seconds()))
			return false
		}
		fmt.Printf("Error: %v\n\n", err)
		return false
	}

	fmt.Printf("Bot: %s\n\n", reply)
	return false
}
