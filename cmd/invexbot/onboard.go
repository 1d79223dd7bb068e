package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invexlabs/invexbot/pkg/config"
)

func newOnboardCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Write a starter configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return onboard(force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration without asking")

	return cmd
}

func onboard(force bool) error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); err == nil && !force {
		fmt.Printf("Configuration already exists at %s\n", configPath)
		fmt.Print("Overwrite it? (y/N): ")

		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Keeping the existing configuration.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := config.SaveConfig(configPath, cfg); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}

	fmt.Printf("✓ Configuration written to %s\n", configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Put your Anthropic API key in providers.anthropic.api_key")
	fmt.Println("     (or export INVEXBOT_PROVIDERS_ANTHROPIC_API_KEY)")
	fmt.Println("  2. Put your Discord bot token in channels.discord.token")
	fmt.Println("     and the guild id in channels.discord.guild_id")
	fmt.Printf("  3. Try it locally:  %s chat\n", appName)
	fmt.Printf("  4. Go live:         %s run\n", appName)

	return nil
}
