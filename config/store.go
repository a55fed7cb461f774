package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kardolus/adventure-agent/internal"
)

const (
	defaultName            = "adventure"
	defaultBackend         = "cohere"
	defaultModel           = "command-r"
	defaultEndpoint        = "http://localhost:8000/mcp"
	defaultGame            = "foglight"
	defaultMaxSteps        = 40
	defaultSeed            = 42
	defaultMaxScore        = 350
	defaultMaxOutputTokens = 300
	defaultUserAgent       = "adventure-agent"
)

type ConfigStore interface {
	Read() (Config, error)
	ReadDefaults() Config
	Write(Config) error
}

// Ensure FileIO implements ConfigStore interface
var _ ConfigStore = &FileIO{}

type FileIO struct {
	configFilePath string
}

func New() *FileIO {
	configPath, _ := getPath()

	return &FileIO{
		configFilePath: configPath,
	}
}

func (f *FileIO) WithConfigPath(configFilePath string) *FileIO {
	f.configFilePath = configFilePath
	return f
}

func (f *FileIO) Read() (Config, error) {
	return parseFile(f.configFilePath)
}

func (f *FileIO) ReadDefaults() Config {
	return Config{
		Name:            defaultName,
		Backend:         defaultBackend,
		Model:           defaultModel,
		Endpoint:        defaultEndpoint,
		Game:            defaultGame,
		MaxSteps:        defaultMaxSteps,
		Seed:            defaultSeed,
		MaxScore:        defaultMaxScore,
		MaxOutputTokens: defaultMaxOutputTokens,
		UserAgent:       defaultUserAgent,
	}
}

func (f *FileIO) Write(config Config) error {
	if err := os.MkdirAll(filepath.Dir(f.configFilePath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(f.configFilePath, data, 0644)
}

func getPath() (string, error) {
	configHome, err := internal.GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(configHome, "config.yaml"), nil
}

func parseFile(fileName string) (Config, error) {
	var result Config

	buf, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(buf, &result); err != nil {
		return Config{}, err
	}

	return result, nil
}
