package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	content := `{
  "watsonx_api_key": "file-key",
  "watsonx_project_id": "file-project",
  "defaults": {
    "output_dir": "/tmp/out",
    "model": "IBM Granite 13B Instruct",
    "font_size": 12
  }
}`
	err := os.WriteFile(configPath, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("WATSONX_API_KEY", "")
	t.Setenv("WATSONX_PROJECT_ID", "")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.WatsonxAPIKey != "file-key" {
		t.Errorf("Expected file-key, got %q", cfg.WatsonxAPIKey)
	}
	if cfg.Defaults.OutputDir != "/tmp/out" {
		t.Errorf("Expected /tmp/out, got %q", cfg.Defaults.OutputDir)
	}
	if cfg.GetModel() != "IBM Granite 13B Instruct" {
		t.Errorf("Unexpected model default: %q", cfg.GetModel())
	}
	if cfg.GetFontSize() != 12 {
		t.Errorf("Unexpected font size default: %v", cfg.GetFontSize())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(configPath, []byte(`{"watsonx_api_key":"file-key","watsonx_project_id":"file-project"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("WATSONX_API_KEY", "env-key")
	t.Setenv("WATSONX_PROJECT_ID", "env-project")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.WatsonxAPIKey != "env-key" {
		t.Errorf("Environment should override file key, got %q", cfg.WatsonxAPIKey)
	}
	if cfg.WatsonxProjectID != "env-project" {
		t.Errorf("Environment should override file project, got %q", cfg.WatsonxProjectID)
	}
}

func TestLoadMissingFileWithEnvCredentials(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("WATSONX_API_KEY", "env-key")
	t.Setenv("WATSONX_PROJECT_ID", "env-project")

	cfg, err := Load(filepath.Join(tmpDir, "nonexistent.json"))
	if err != nil {
		t.Fatalf("Load should tolerate a missing file when env supplies credentials: %v", err)
	}
	if cfg.WatsonxAPIKey != "env-key" {
		t.Errorf("Expected env-key, got %q", cfg.WatsonxAPIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError bool
	}{
		{
			name:      "missing api key",
			cfg:       Config{WatsonxProjectID: "p"},
			wantError: true,
		},
		{
			name:      "missing project id",
			cfg:       Config{WatsonxAPIKey: "k"},
			wantError: true,
		},
		{
			name:      "complete",
			cfg:       Config{WatsonxAPIKey: "k", WatsonxProjectID: "p"},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateDefaultsOutputDir(t *testing.T) {
	cfg := Config{WatsonxAPIKey: "k", WatsonxProjectID: "p"}
	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Defaults.OutputDir != "./resumes" {
		t.Errorf("Expected default output dir ./resumes, got %q", cfg.Defaults.OutputDir)
	}
}

func TestDefaultAccessors(t *testing.T) {
	cfg := Config{}
	if cfg.GetModel() != DefaultModel {
		t.Errorf("Expected %q, got %q", DefaultModel, cfg.GetModel())
	}
	if cfg.GetTemplate() != DefaultTemplate {
		t.Errorf("Expected %q, got %q", DefaultTemplate, cfg.GetTemplate())
	}
	if cfg.GetFont() != DefaultFont {
		t.Errorf("Expected %q, got %q", DefaultFont, cfg.GetFont())
	}
	if cfg.GetFontSize() != DefaultFontSize {
		t.Errorf("Expected %v, got %v", DefaultFontSize, cfg.GetFontSize())
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("Config file missing: %v", err)
	}

	// A second init must refuse to clobber the existing file.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error on existing config file, got nil")
	}
}
