package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Generator GeneratorConfig `yaml:"generator"`
	YouTube   YouTubeConfig   `yaml:"youtube"`
	Wizard    WizardConfig    `yaml:"wizard"`
	Kafka     KafkaConfig     `yaml:"kafka"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// GeneratorConfig holds tunables for the Gemini comment generator.
type GeneratorConfig struct {
	// Model is the Gemini model name used for comment generation.
	Model string `yaml:"model"`

	// DescriptionMaxRunes bounds the video description included in a prompt.
	// Keeps the generation request within provider limits.
	DescriptionMaxRunes int `yaml:"description_max_runes"`

	// TranscriptMaxRunes bounds the transcript excerpt included in a prompt.
	TranscriptMaxRunes int `yaml:"transcript_max_runes"`
}

// YouTubeConfig holds tunables for the YouTube Data API client.
type YouTubeConfig struct {
	// DefaultMaxResults is used when a search request does not specify one.
	DefaultMaxResults int `yaml:"default_max_results"`

	// QuotaErrorSubstring is matched against 403 responses to detect a
	// quota-exhausted condition. The upstream error shape is not a stable
	// contract, so the heuristic is configurable rather than hard-coded.
	QuotaErrorSubstring string `yaml:"quota_error_substring"`
}

// WizardConfig holds tunables for the wizard orchestrator.
type WizardConfig struct {
	// QuickSettleDelayMillis is how long the quick path waits after all
	// generations settle before advancing to the review stage.
	QuickSettleDelayMillis int `yaml:"quick_settle_delay_millis"`
}

type KafkaConfig struct {
	Enabled bool   `yaml:"enabled"`
	Brokers string `yaml:"brokers"`
}

func (c GeneratorConfig) DescriptionLimit() int {
	if c.DescriptionMaxRunes > 0 {
		return c.DescriptionMaxRunes
	}
	return 500
}

func (c GeneratorConfig) TranscriptLimit() int {
	if c.TranscriptMaxRunes > 0 {
		return c.TranscriptMaxRunes
	}
	return 3000
}

func (c YouTubeConfig) MaxResultsOrDefault() int {
	if c.DefaultMaxResults > 0 {
		return c.DefaultMaxResults
	}
	return 10
}

func (c YouTubeConfig) QuotaSubstring() string {
	if c.QuotaErrorSubstring != "" {
		return c.QuotaErrorSubstring
	}
	return "quota"
}

func (c WizardConfig) QuickSettleDelay() time.Duration {
	if c.QuickSettleDelayMillis > 0 {
		return time.Duration(c.QuickSettleDelayMillis) * time.Millisecond
	}
	return 800 * time.Millisecond
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
