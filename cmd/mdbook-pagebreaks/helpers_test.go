package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an isolated environment: stdin is the given string,
// environment variables come from vars and the working directory is a temp dir.
func newTestEnv(t *testing.T, stdin string, vars map[string]string) *testEnv {
	t.Helper()

	wd := t.TempDir()
	var stdout, stderr bytes.Buffer
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}

	return &testEnv{
		Environment: &Environment{
			Stdin:            strings.NewReader(stdin),
			Stdout:           &stdout,
			Stderr:           &stderr,
			Getenv:           func(k string) string { return vars[k] },
			Environ:          func() []string { return environ },
			Getwd:            func() (string, error) { return wd, nil },
			StdinIsTerminal:  func() bool { return false },
			StderrIsTerminal: func() bool { return false },
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// hostInput renders the [context, book] pair mdBook writes to a preprocessor.
func hostInput(renderer, version, content string) string {
	contentJSON, _ := json.Marshal(content)
	return `[{"root": "/path/to/book", "config": {"book": {"title": "TITLE"}, "preprocessor": {"pagebreaks": {}}},
		"renderer": "` + renderer + `", "mdbook_version": "` + version + `"},
		{"sections": [{"Chapter": {"name": "Chapter 1", "content": ` + string(contentJSON) + `, "number": [1],
		"sub_items": [], "path": "chapter_1.md", "source_path": "chapter_1.md", "parent_names": []}}],
		"__non_exhaustive": null}]`
}
