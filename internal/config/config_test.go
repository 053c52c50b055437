package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes content to name inside a fresh temp dir and returns its path.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Init.OutputDir != "" {
		t.Errorf("Init.OutputDir = %q, want empty", cfg.Init.OutputDir)
	}
	if cfg.Init.FileName != "mdbook-pagebreaks.css" {
		t.Errorf("Init.FileName = %q, want %q", cfg.Init.FileName, "mdbook-pagebreaks.css")
	}
	if cfg.Init.Style != "pagebreaks" {
		t.Errorf("Init.Style = %q, want %q", cfg.Init.Style, "pagebreaks")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
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
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "zero value is valid", cfg: Config{}},
		{
			name: "fully populated is valid",
			cfg: Config{
				Init:   InitConfig{OutputDir: "theme", FileName: "breaks.css", Style: "visible"},
				Log:    LogConfig{Level: "debug"},
				Assets: AssetsConfig{BasePath: "/srv/assets"},
			},
		},
		{name: "upper-case level is valid", cfg: Config{Log: LogConfig{Level: "WARN"}}},
		{name: "unknown level", cfg: Config{Log: LogConfig{Level: "trace"}}, wantErr: ErrInvalidValue},
		{name: "file name with slash", cfg: Config{Init: InitConfig{FileName: "theme/breaks.css"}}, wantErr: ErrInvalidValue},
		{name: "file name with backslash", cfg: Config{Init: InitConfig{FileName: "theme\\breaks.css"}}, wantErr: ErrInvalidValue},
		{name: "file name without css suffix", cfg: Config{Init: InitConfig{FileName: "breaks.txt"}}, wantErr: ErrInvalidValue},
		{name: "file name with null byte", cfg: Config{Init: InitConfig{FileName: "a\x00.css"}}, wantErr: ErrInvalidValue},
		{
			name:    "output dir too long",
			cfg:     Config{Init: InitConfig{OutputDir: strings.Repeat("d", MaxPathLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "file name too long",
			cfg:     Config{Init: InitConfig{FileName: strings.Repeat("f", MaxFileNameLength) + ".css"}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "style too long",
			cfg:     Config{Init: InitConfig{Style: strings.Repeat("s", MaxStyleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "base path too long",
			cfg:     Config{Assets: AssetsConfig{BasePath: strings.Repeat("p", MaxPathLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
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

func TestIsLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "disabled", "Info"} {
		if !IsLogLevel(level) {
			t.Errorf("IsLogLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "trace", "warning", " info"} {
		if IsLogLevel(level) {
			t.Errorf("IsLogLevel(%q) = true, want false", level)
		}
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
		path := writeConfig(t, "book.yaml", `init:
  outputDir: "theme"
  fileName: "breaks.css"
  style: "visible"
log:
  level: "debug"
assets:
  basePath: "/srv/assets"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := Config{
			Init:   InitConfig{OutputDir: "theme", FileName: "breaks.css", Style: "visible"},
			Log:    LogConfig{Level: "debug"},
			Assets: AssetsConfig{BasePath: "/srv/assets"},
		}
		if *cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := writeConfig(t, "partial.yaml", "init:\n  outputDir: theme\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Init.FileName != DefaultFileName {
			t.Errorf("Init.FileName = %q, want %q", cfg.Init.FileName, DefaultFileName)
		}
		if cfg.Init.Style != DefaultStyle {
			t.Errorf("Init.Style = %q, want %q", cfg.Init.Style, DefaultStyle)
		}
		if cfg.Log.Level != DefaultLogLevel {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, "invalid.yaml", "init: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, "unknown.yaml", "log:\n  level: info\nrenderer: html\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, "empty.yaml", "")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		path := writeConfig(t, "level.yaml", "log:\n  level: verbose\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}
		path := writeConfig(t, "unreadable.yaml", "log:\n  level: info\n")
		if err := os.Chmod(path, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(path, 0600)

		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves in current directory", func(t *testing.T) {
		for _, ext := range []string{".yaml", ".yml"} {
			t.Run(ext, func(t *testing.T) {
				dir := t.TempDir()
				if err := os.WriteFile(filepath.Join(dir, "book"+ext), []byte("init:\n  style: visible\n"), 0600); err != nil {
					t.Fatalf("setup: %v", err)
				}
				t.Chdir(dir)

				cfg, err := LoadConfig("book")
				if err != nil {
					t.Fatalf("LoadConfig() error = %v", err)
				}
				if cfg.Init.Style != "visible" {
					t.Errorf("Init.Style = %q, want %q", cfg.Init.Style, "visible")
				}
			})
		}
	})

	t.Run("config name resolves in user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())

		userDir, err := os.UserConfigDir()
		if err != nil {
			t.Skipf("no user config dir: %v", err)
		}
		appDir := filepath.Join(userDir, AppDir)
		if err := os.MkdirAll(appDir, 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(filepath.Join(appDir, "shared.yaml"), []byte("log:\n  level: warn\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Log.Level != "warn" {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
		}
	})

	t.Run("unknown config name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nothing-here")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nothing-here.yaml") || !strings.Contains(err.Error(), "nothing-here.yml") {
			t.Errorf("error %q should list the tried paths", err)
		}
	})
}

func TestSearchedPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	paths := SearchedPaths("book")
	if len(paths) < 2 {
		t.Fatalf("SearchedPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "book.yaml" || paths[1] != "book.yml" {
		t.Errorf("local candidates = %v, want [book.yaml book.yml]", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, AppDir) {
			t.Errorf("user candidate %q should live under %s", p, AppDir)
		}
	}
}
