package main

// Notes:
// - runPreprocess is driven through runMain so exit codes and stderr
//   formatting are covered together with the protocol.

import (
	"encoding/json"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunPreprocess - Host round trip through stdin/stdout
// ---------------------------------------------------------------------------

func TestRunPreprocess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		renderer    string
		wantContent string
	}{
		{"html renders a break element", "html", "# Chapter 1\n<div class=\"mdbook_pagebreak\">&nbsp;</div>"},
		{"other renderer strips the marker", "other", "# Chapter 1\n"},
		{"pdf renderer strips the marker", "pdf", "# Chapter 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, hostInput(tt.renderer, "0.4.21", "# Chapter 1\n{{---}}"), nil)
			if code := runMain([]string{progName}, env.Environment); code != ExitSuccess {
				t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, env.stderr)
			}

			if raw := env.stdout.String(); strings.Contains(raw, `\u00`) {
				t.Errorf("stdout should carry HTML unescaped, got %s", raw)
			}

			var out struct {
				Sections []struct {
					Chapter struct {
						Content string `json:"content"`
						Path    string `json:"path"`
					} `json:"Chapter"`
				} `json:"sections"`
			}
			if err := json.Unmarshal(env.stdout.Bytes(), &out); err != nil {
				t.Fatalf("stdout is not a book: %v\n%s", err, env.stdout)
			}
			if len(out.Sections) != 1 {
				t.Fatalf("len(sections) = %d, want 1", len(out.Sections))
			}
			if got := out.Sections[0].Chapter.Content; got != tt.wantContent {
				t.Errorf("content = %q, want %q", got, tt.wantContent)
			}
			if got := out.Sections[0].Chapter.Path; got != "chapter_1.md" {
				t.Errorf("path = %q, want chapter_1.md", got)
			}
			if env.stderr.Len() != 0 {
				t.Errorf("stderr should be empty at info level, got %q", env.stderr)
			}
		})
	}
}

func TestRunPreprocess_VersionMismatchWarns(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, hostInput("html", "0.5.0", "{{---}}"), nil)
	if code := runMain([]string{progName}, env.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, env.stderr)
	}

	stderr := env.stderr.String()
	for _, want := range []string{"WRN", "mdBook version mismatch", "0.4.21", "0.5.0"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q, got %q", want, stderr)
		}
	}
	if !strings.Contains(env.stdout.String(), "mdbook_pagebreak") {
		t.Error("book should still be processed on a version mismatch")
	}
}

func TestRunPreprocess_QuietHidesWarning(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, hostInput("html", "0.5.0", "{{---}}"), nil)
	if code := runMain([]string{progName, "--quiet"}, env.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
	}
	if env.stderr.Len() != 0 {
		t.Errorf("stderr should be empty with --quiet, got %q", env.stderr)
	}
}

func TestRunPreprocess_VerboseLogsSummary(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, hostInput("epub", "0.4.21", "{{---}}\ntext\n{{---}}"), nil)
	if code := runMain([]string{progName, "-v"}, env.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, env.stderr)
	}

	stderr := env.stderr.String()
	for _, want := range []string{"processing book", "renderer=epub", "policy=strip-only", "chapters=1", "markers=2"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q, got %q", want, stderr)
		}
	}
}

func TestRunPreprocess_LogLevelFromEnv(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, hostInput("html", "0.4.21", "{{---}}"), map[string]string{
		"MDBOOK_PAGEBREAKS_LOG_LEVEL": "debug",
	})
	if code := runMain([]string{progName}, env.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, env.stderr)
	}
	if !strings.Contains(env.stderr.String(), "processing book") {
		t.Errorf("debug level from env should log the summary, got %q", env.stderr)
	}
}

func TestRunPreprocess_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		stdin        string
		vars         map[string]string
		wantCode     int
		wantInStderr []string
	}{
		{
			name:         "empty stdin",
			stdin:        "",
			wantCode:     ExitUsage,
			wantInStderr: []string{"input is empty", "hint:", "[preprocessor.pagebreaks]"},
		},
		{
			name:         "not a pair",
			stdin:        `{"sections": []}`,
			wantCode:     ExitUsage,
			wantInStderr: []string{"hint:"},
		},
		{
			name:         "unparsable host version",
			stdin:        hostInput("html", "latest", "{{---}}"),
			wantCode:     ExitGeneral,
			wantInStderr: []string{"latest"},
		},
		{
			name:         "unexpected positional argument after flags",
			args:         []string{"-v", "extra"},
			stdin:        hostInput("html", "0.4.21", ""),
			wantCode:     ExitUsage,
			wantInStderr: []string{"unexpected arguments"},
		},
		{
			name:         "unknown flag",
			args:         []string{"--frobnicate"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"frobnicate"},
		},
		{
			name:         "invalid log level in env",
			stdin:        hostInput("html", "0.4.21", ""),
			vars:         map[string]string{"MDBOOK_PAGEBREAKS_LOG_LEVEL": "loud"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"log.level", "loud"},
		},
		{
			name:         "missing config name",
			args:         []string{"--config", "does-not-exist-anywhere"},
			stdin:        hostInput("html", "0.4.21", ""),
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint: use --config"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, tt.stdin, tt.vars)
			code := runMain(append([]string{progName}, tt.args...), env.Environment)
			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, env.stderr)
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(env.stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, env.stderr)
				}
			}
			if env.stdout.Len() != 0 {
				t.Errorf("stdout should stay empty on error, got %q", env.stdout)
			}
		})
	}
}

func TestRunPreprocess_InteractiveHint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "", nil)
	env.StdinIsTerminal = func() bool { return true }

	runMain([]string{progName}, env.Environment)
	if !strings.Contains(env.stderr.String(), "mdbook build") {
		t.Errorf("interactive run should suggest mdbook build, got %q", env.stderr)
	}
}
