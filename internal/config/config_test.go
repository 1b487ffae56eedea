package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if len(cfg.Input.Include) != 1 || cfg.Input.Include[0] != "**/*.md" {
		t.Errorf("Input.Include = %v, want [**/*.md]", cfg.Input.Include)
	}
	if cfg.Output.Standalone {
		t.Error("Output.Standalone = true, want false")
	}
	if cfg.Render.Editable {
		t.Error("Render.Editable = true, want false")
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if err != nil && !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error %q should name the field", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestThemeConfig_Classes(t *testing.T) {
	t.Parallel()

	theme := ThemeConfig{Radius: "rounded-xl", Foreground: " text-stone-900 ", Accent: ""}
	got := theme.Classes()
	want := []string{"rounded-xl", "text-stone-900"}

	if len(got) != len(want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name: "valid full config",
			mutate: func(c *Config) {
				c.Input.Include = []string{"modules/**/*.md", "*.markdown"}
				c.Render = RenderConfig{Editable: true, Width: 4, Height: 2, Highlight: "monokai"}
				c.Theme = ThemeConfig{Radius: "rounded-2xl", Variables: map[string]string{"accent": "#2563eb"}}
				c.Log.Level = "DEBUG"
			},
		},
		{
			name:    "malformed include pattern",
			mutate:  func(c *Config) { c.Input.Include = []string{"modules/[unclosed"} },
			wantErr: ErrInvalidValue,
		},
		{
			name: "too many include patterns",
			mutate: func(c *Config) {
				c.Input.Include = make([]string, MaxPatterns+1)
				for i := range c.Input.Include {
					c.Input.Include[i] = "*.md"
				}
			},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "include pattern too long",
			mutate:  func(c *Config) { c.Input.Include = []string{strings.Repeat("a", MaxPatternLength+1)} },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "negative width",
			mutate:  func(c *Config) { c.Render.Width = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "height above maximum",
			mutate:  func(c *Config) { c.Render.Height = MaxDimension + 1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "dimension at maximum",
			mutate:  func(c *Config) { c.Render.Width = MaxDimension },
			wantErr: nil,
		},
		{
			name:    "theme class with spaces",
			mutate:  func(c *Config) { c.Theme.Background = "bg-white text-black" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "theme class too long",
			mutate:  func(c *Config) { c.Theme.Radius = strings.Repeat("r", MaxClassLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "theme variable value too long",
			mutate:  func(c *Config) { c.Theme.Variables = map[string]string{"x": strings.Repeat("1", MaxVariableLength+1)} },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "chatty" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "template set name too long",
			mutate:  func(c *Config) { c.Assets.TemplateSet = strings.Repeat("t", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "site.yaml", `input:
  defaultDir: "modules"
  include: ["**/*.md", "**/*.markdown"]
output:
  defaultDir: "public"
  standalone: true
render:
  editable: true
  width: 2
  height: 1
theme:
  radius: "rounded-3xl"
  accent: "accent-green-600"
  variables:
    card-gap: "12px"
assets:
  templateSet: "default"
  style: "default"
log:
  level: "info"
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "modules" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "modules")
		}
		if len(cfg.Input.Include) != 2 {
			t.Errorf("Input.Include = %v, want 2 patterns", cfg.Input.Include)
		}
		if !cfg.Output.Standalone {
			t.Error("Output.Standalone = false, want true")
		}
		if !cfg.Render.Editable || cfg.Render.Width != 2 || cfg.Render.Height != 1 {
			t.Errorf("Render = %+v", cfg.Render)
		}
		if cfg.Theme.Variables["card-gap"] != "12px" {
			t.Errorf("Theme.Variables = %v", cfg.Theme.Variables)
		}
		if cfg.Assets.TemplateSet != "default" {
			t.Errorf("Assets.TemplateSet = %q, want %q", cfg.Assets.TemplateSet, "default")
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
		}
	})

	t.Run("omitted include keeps default pattern", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "min.yaml", "render:\n  editable: true\n")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if len(cfg.Input.Include) != 1 || cfg.Input.Include[0] != "**/*.md" {
			t.Errorf("Input.Include = %v, want default", cfg.Input.Include)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "invalid.yaml", "render: [unclosed")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "unknown.yaml", "render:\n  editable: true\nunknownField: x\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file selects defaults", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "empty.yaml", "\n")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Input.Include) != 1 || cfg.Input.Include[0] != "**/*.md" {
			t.Errorf("Include = %v, want default", cfg.Input.Include)
		}
	})

	t.Run("parse error names the file and key", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "typo.yaml", "render:\n  widht: 2\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Fatalf("error = %v, want ErrConfigParse", err)
		}
		for _, want := range []string{configPath, "widht"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q should contain %q", err, want)
			}
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "wide.yaml", "render:\n  width: 40\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Getuid() == 0 {
			t.Skip("permission bits not enforced")
		}
		configPath := writeConfig(t, t.TempDir(), "unreadable.yaml", "log:\n  level: info\n")
		if err := os.Chmod(configPath, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(configPath, 0600)

		_, err := LoadConfig(configPath)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "assets:\n  style: fromname\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Assets.Style != "fromname" {
			t.Errorf("Assets.Style = %q, want %q", cfg.Assets.Style, "fromname")
		}
	})

	t.Run("config name prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "assets:\n  style: yaml\n")
		writeConfig(t, dir, "myconfig.yml", "assets:\n  style: yml\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Assets.Style != "yaml" {
			t.Errorf("Assets.Style = %q, want %q (should prefer .yaml)", cfg.Assets.Style, "yaml")
		}
	})

	t.Run("config name resolves from user config directory", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on unix")
		}
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		appDir := filepath.Join(xdg, "go-bento")
		if err := os.MkdirAll(appDir, 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		writeConfig(t, appDir, "testconfig.yml", "assets:\n  style: userdir\n")
		t.Chdir(t.TempDir())

		cfg, err := LoadConfig("testconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Assets.Style != "userdir" {
			t.Errorf("Assets.Style = %q, want %q", cfg.Assets.Style, "userdir")
		}
	})

	t.Run("config name not found lists searched paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nonexistent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nonexistent.yml") {
			t.Errorf("error %q should list tried paths", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("site")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least local paths", paths)
	}
	if paths[0] != "site.yaml" || paths[1] != "site.yml" {
		t.Errorf("local paths = %v, want site.yaml then site.yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, "go-bento") {
			t.Errorf("user path %q should be under go-bento", p)
		}
	}
}
