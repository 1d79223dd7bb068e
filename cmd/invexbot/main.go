package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/invexlabs/invexbot/pkg/advisor"
	"github.com/invexlabs/invexbot/pkg/config"
	"github.com/invexlabs/invexbot/pkg/conversation"
	"github.com/invexlabs/invexbot/pkg/knowledge"
	"github.com/invexlabs/invexbot/pkg/providers"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

const appName = "invexbot"

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildRootCommand() *cobra.Command {
	var showVersion bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Conversational reselling advisor with a Discord gateway",
		Long: `invexbot is a reselling-advisory chat bot.

It tracks each user's conversation (budget, interests, experience),
asks the right next question, awards progress badges, and answers
questions from a knowledge base backed by an LLM.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion()
				return nil
			}
			_ = cmd.Help()
			return fmt.Errorf("a subcommand is required")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "Show build/version metadata")

	root.AddCommand(newOnboardCommand())
	root.AddCommand(newRunCommand())
	root.AddCommand(newChatCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build/version metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersion()
			return nil
		},
	}
}

func printVersion() {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	fmt.Printf("%s %s\n", appName, v)
	if buildTime != "" {
		fmt.Printf("  Build: %s\n", buildTime)
	}
	goVer := goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	fmt.Printf("  Go: %s\n", goVer)
}

func getConfigPath() string {
	if path := os.Getenv("INVEXBOT_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(home, ".invexbot", "config.json")
}

func validateRuntimeConfig(cfg *config.Config, requireDiscord bool) error {
	configPath := getConfigPath()
	if cfg.GetAPIKey() == "" {
		return fmt.Errorf("providers.anthropic.api_key is required in %s or INVEXBOT_PROVIDERS_ANTHROPIC_API_KEY", configPath)
	}
	if requireDiscord && cfg.Channels.Discord.Token == "" {
		return fmt.Errorf("channels.discord.token is required in %s or INVEXBOT_CHANNELS_DISCORD_TOKEN", configPath)
	}
	return nil
}

// buildEngine assembles the advisory stack from config: knowledge base,
// LLM provider, session store, engine.
func buildEngine(cfg *config.Config) (*advisor.Engine, *conversation.Manager, error) {
	kb, err := knowledge.Load(cfg.Knowledge.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load knowledge base: %w", err)
	}

	provider := providers.NewAnthropicProvider(cfg.GetAPIKey(), cfg.GetAPIBase(), cfg.Providers.Anthropic.Model)

	conv := conversation.NewManager(conversation.Options{
		Expiry:     time.Duration(cfg.Advisor.SessionExpiryMinutes) * time.Minute,
		HistoryCap: cfg.Advisor.HistoryLimit,
	})

	engine := advisor.NewEngine(advisor.Options{
		Conversation: conv,
		Knowledge:    kb,
		Provider:     provider,
		MaxTokens:    cfg.Providers.Anthropic.MaxTokens,
		Temperature:  cfg.Providers.Anthropic.Temperature,
		MaxRequests:  cfg.Advisor.MaxRequestsPerWindow,
		Cooldown:     time.Duration(cfg.Advisor.CooldownSeconds) * time.Second,
	})

	return engine, conv, nil
}
