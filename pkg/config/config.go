package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
)

// FlexibleStringSlice is a []string that also accepts JSON numbers,
// so allow_from can contain both "123" and 123.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var ss []string
	if err := json.Unmarshal(data, &ss); err == nil {
		*f = ss
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	result := make([]string, 0, len(raw))
	for _, v := range raw {
		switch val := v.(type) {
		case string:
			result = append(result, val)
		case float64:
			result = append(result, fmt.Sprintf("%.0f", val))
		default:
			result = append(result, fmt.Sprintf("%v", val))
		}
	}
	*f = result
	return nil
}

type Config struct {
	Channels  ChannelsConfig  `json:"channels"`
	Providers ProvidersConfig `json:"providers"`
	Advisor   AdvisorConfig   `json:"advisor"`
	Knowledge KnowledgeConfig `json:"knowledge"`
	mu        sync.RWMutex
}

type ChannelsConfig struct {
	Discord DiscordConfig `json:"discord"`
}

type DiscordConfig struct {
	Token        string              `json:"token" env:"INVEXBOT_CHANNELS_DISCORD_TOKEN"`
	GuildID      string              `json:"guild_id" env:"INVEXBOT_CHANNELS_DISCORD_GUILD_ID"`
	MemberRoleID string              `json:"member_role_id" env:"INVEXBOT_CHANNELS_DISCORD_MEMBER_ROLE_ID"`
	AllowFrom    FlexibleStringSlice `json:"allow_from" env:"INVEXBOT_CHANNELS_DISCORD_ALLOW_FROM"`
}

type ProvidersConfig struct {
	Anthropic AnthropicConfig `json:"anthropic"`
}

type AnthropicConfig struct {
	APIKey      string  `json:"api_key" env:"INVEXBOT_PROVIDERS_ANTHROPIC_API_KEY"`
	APIBase     string  `json:"api_base" env:"INVEXBOT_PROVIDERS_ANTHROPIC_API_BASE"`
	Model       string  `json:"model" env:"INVEXBOT_PROVIDERS_ANTHROPIC_MODEL"`
	MaxTokens   int     `json:"max_tokens" env:"INVEXBOT_PROVIDERS_ANTHROPIC_MAX_TOKENS"`
	Temperature float64 `json:"temperature" env:"INVEXBOT_PROVIDERS_ANTHROPIC_TEMPERATURE"`
}

type AdvisorConfig struct {
	SessionExpiryMinutes int    `json:"session_expiry_minutes" env:"INVEXBOT_ADVISOR_SESSION_EXPIRY_MINUTES"`
	HistoryLimit         int    `json:"history_limit" env:"INVEXBOT_ADVISOR_HISTORY_LIMIT"`
	MaxRequestsPerWindow int    `json:"max_requests_per_window" env:"INVEXBOT_ADVISOR_MAX_REQUESTS_PER_WINDOW"`
	CooldownSeconds      int    `json:"cooldown_seconds" env:"INVEXBOT_ADVISOR_COOLDOWN_SECONDS"`
	SweepSchedule        string `json:"sweep_schedule" env:"INVEXBOT_ADVISOR_SWEEP_SCHEDULE"`
}

type KnowledgeConfig struct {
	Path string `json:"path" env:"INVEXBOT_KNOWLEDGE_PATH"`
}

func DefaultConfig() *Config {
	return &Config{
		Channels: ChannelsConfig{
			Discord: DiscordConfig{
				Token:     "",
				AllowFrom: FlexibleStringSlice{},
			},
		},
		Providers: ProvidersConfig{
			Anthropic: AnthropicConfig{
				Model:       "claude-3-5-sonnet-20241022",
				MaxTokens:   8192,
				Temperature: 0.9,
			},
		},
		Advisor: AdvisorConfig{
			SessionExpiryMinutes: 30,
			HistoryLimit:         50,
			MaxRequestsPerWindow: 5,
			CooldownSeconds:      60,
			SweepSchedule:        "*/10 * * * *",
		},
		Knowledge: KnowledgeConfig{
			Path: "knowledge_base.json",
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) GetAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Providers.Anthropic.APIKey
}

func (c *Config) GetAPIBase() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Providers.Anthropic.APIBase != "" {
		return c.Providers.Anthropic.APIBase
	}
	return "https://api.anthropic.com/v1"
}
