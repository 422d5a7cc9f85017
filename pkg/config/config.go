package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Built-in defaults applied when neither the config file nor flags choose
// otherwise.
const (
	DefaultModel    = "Mistral Large"
	DefaultFont     = "Arial"
	DefaultTemplate = "Professional"
	DefaultFontSize = 11.0
)

// Config holds credentials and per-command defaults.
type Config struct {
	WatsonxAPIKey    string        `json:"watsonx_api_key"`
	WatsonxProjectID string        `json:"watsonx_project_id"`
	Defaults         DefaultConfig `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string  `json:"output_dir"`
	Model     string  `json:"model,omitempty"`
	Template  string  `json:"template,omitempty"`
	Font      string  `json:"font,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`
}

// GetModel returns the default model display name.
func (c *Config) GetModel() (model string) {
	if c.Defaults.Model != "" {
		model = c.Defaults.Model
		return model
	}
	model = DefaultModel
	return model
}

// GetTemplate returns the default template style name.
func (c *Config) GetTemplate() (template string) {
	if c.Defaults.Template != "" {
		template = c.Defaults.Template
		return template
	}
	template = DefaultTemplate
	return template
}

// GetFont returns the default font display name.
func (c *Config) GetFont() (font string) {
	if c.Defaults.Font != "" {
		font = c.Defaults.Font
		return font
	}
	font = DefaultFont
	return font
}

// GetFontSize returns the default PDF font size.
func (c *Config) GetFontSize() (size float64) {
	if c.Defaults.FontSize != 0 {
		size = c.Defaults.FontSize
		return size
	}
	size = DefaultFontSize
	return size
}

// Load reads configuration from file with environment variable overrides.
// A .env file in the working directory is honored if present. A missing
// config file is tolerated when the environment supplies the credentials;
// missing credentials are a startup error either way.
func Load(configPath string) (cfg Config, err error) {
	// Best effort; absence of a .env file is normal.
	_ = godotenv.Load()

	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".resume-studio", "config.json")
	}

	data, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case !os.IsNotExist(readErr):
		err = errors.Wrapf(readErr, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("WATSONX_API_KEY"); apiKey != "" {
		cfg.WatsonxAPIKey = apiKey
	}
	if projectID := os.Getenv("WATSONX_PROJECT_ID"); projectID != "" {
		cfg.WatsonxProjectID = projectID
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() (err error) {
	if c.WatsonxAPIKey == "" {
		err = errors.New("watsonx_api_key is required (set in config or WATSONX_API_KEY env var)")
		return err
	}

	if c.WatsonxProjectID == "" {
		err = errors.New("watsonx_project_id is required (set in config or WATSONX_PROJECT_ID env var)")
		return err
	}

	// Set default output_dir if not specified
	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "./resumes"
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		path = filepath.Join(homeDir, ".resume-studio", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		WatsonxAPIKey:    "your-watsonx-api-key",
		WatsonxProjectID: "your-watsonx-project-id",
		Defaults: DefaultConfig{
			OutputDir: filepath.Join(homeDir, "Documents", "Resumes"),
			Model:     DefaultModel,
			Template:  DefaultTemplate,
			Font:      DefaultFont,
			FontSize:  DefaultFontSize,
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
