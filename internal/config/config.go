package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config carries every file location the chatbot touches. It is built
// once in main and handed to the knowledge store, so tests can run
// against a temp directory instead of patching globals.
type Config struct {
	DataDir        string `yaml:"data_dir" mapstructure:"data_dir"`
	KnowledgeFile  string `yaml:"knowledge_file" mapstructure:"knowledge_file"`
	ChatLogFile    string `yaml:"chat_log_file" mapstructure:"chat_log_file"`
	SeedFile       string `yaml:"seed_file" mapstructure:"seed_file"`
	WatchKnowledge bool   `yaml:"watch_knowledge" mapstructure:"watch_knowledge"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:        ".",
		KnowledgeFile:  "knowledge.json",
		ChatLogFile:    "chat_log.txt",
		SeedFile:       "starter.yaml",
		WatchKnowledge: true,
	}
}

// KnowledgePath is the resolved location of the persisted knowledge base.
func (c *Config) KnowledgePath() string {
	return filepath.Join(c.DataDir, c.KnowledgeFile)
}

// ChatLogPath is the resolved location of the append-only chat log.
func (c *Config) ChatLogPath() string {
	return filepath.Join(c.DataDir, c.ChatLogFile)
}

// SeedPath is the resolved location of the optional starter seed file.
// Empty when no seed file is configured.
func (c *Config) SeedPath() string {
	if c.SeedFile == "" {
		return ""
	}
	return filepath.Join(c.DataDir, c.SeedFile)
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "codtech-chatbot")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "codtech-chatbot")
}

// Load reads config.yaml from the working directory or the user config
// dir, with CHATBOT_* environment overrides. Missing files are fine;
// defaults apply.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(configDir())

	viper.SetEnvPrefix("CHATBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	if c.KnowledgeFile == "" {
		return fmt.Errorf("config: knowledge_file is required")
	}
	if c.ChatLogFile == "" {
		return fmt.Errorf("config: chat_log_file is required")
	}
	if c.KnowledgeFile == c.ChatLogFile {
		return fmt.Errorf("config: knowledge_file and chat_log_file must differ")
	}
	return nil
}
