package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Planner PlannerConfig `yaml:"planner"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LLMConfig selects the idea provider. API keys are read from the
// environment (GEMINI_API_KEY / OPENAI_API_KEY), not from the config file.
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	ModelName string `yaml:"model_name"`
}

// PlannerConfig holds the selectable option lists offered to clients.
// Empty lists fall back to the built-in defaults below.
type PlannerConfig struct {
	Platforms []string `yaml:"platforms"`
	Tones     []string `yaml:"tones"`
	Models    []string `yaml:"models"`
}

var defaultPlatforms = []string{"TikTok", "LinkedIn", "X(Twitter)", "Instagram", "YouTube"}
var defaultTones = []string{"Professional", "Casual", "Inspiring", "Witty"}
var defaultModels = []string{"gemini-2.5-flash", "gpt-4o", "gpt-4-turbo", "gpt-3.5-turbo"}

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
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "google"
	}
	if c.LLM.ModelName == "" {
		c.LLM.ModelName = "gemini-2.5-flash"
	}
	if len(c.Planner.Platforms) == 0 {
		c.Planner.Platforms = defaultPlatforms
	}
	if len(c.Planner.Tones) == 0 {
		c.Planner.Tones = defaultTones
	}
	if len(c.Planner.Models) == 0 {
		c.Planner.Models = defaultModels
	}
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
