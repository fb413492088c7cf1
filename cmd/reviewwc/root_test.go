// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()

	// Keep user-facing output out of the test log.
	old := os.Stdout
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	os.Stdout = devNull
	defer func() {
		os.Stdout = old
		devNull.Close()
	}()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		args        []string
		wantErr     bool
		errContains string
		validate    func(t *testing.T, dir string)
	}{
		{
			name: "basic_run",
			files: map[string]string{
				"Reviews1.json": `[{"text":"good product"},{"text":""}]`,
				"Reviews2.json": `[{"text":"bad"}]`,
			},
			validate: func(t *testing.T, dir string) {
				data, err := os.ReadFile(filepath.Join(dir, "Reviews1.json"))
				require.NoError(t, err)
				assert.Contains(t, string(data), `"wordCount": 2`, "first record should gain a count")
				assert.Contains(t, string(data), `"wordCount": 0`, "empty text should count zero")
			},
		},
		{
			name:  "empty_directory_succeeds",
			files: map[string]string{},
		},
		{
			name: "failures_tolerated_by_default",
			files: map[string]string{
				"Reviews1.json": `not json at all`,
			},
			validate: func(t *testing.T, dir string) {
				data, err := os.ReadFile(filepath.Join(dir, "Reviews1.json"))
				require.NoError(t, err)
				assert.Equal(t, "not json at all", string(data), "broken file left untouched")
			},
		},
		{
			name: "strict_mode_escalates_failures",
			files: map[string]string{
				"Reviews1.json": `not json at all`,
			},
			args:        []string{"--strict"},
			wantErr:     true,
			errContains: "1 of 1 files failed",
		},
		{
			name: "custom_pattern_flag",
			files: map[string]string{
				"feedback.json": `[{"text":"a b c"}]`,
				"Reviews1.json": `[{"text":"ignored here"}]`,
			},
			args: []string{"--pattern", "feedback*.json"},
			validate: func(t *testing.T, dir string) {
				data, err := os.ReadFile(filepath.Join(dir, "feedback.json"))
				require.NoError(t, err)
				assert.Contains(t, string(data), `"wordCount": 3`, "matching file processed")

				data, err = os.ReadFile(filepath.Join(dir, "Reviews1.json"))
				require.NoError(t, err)
				assert.NotContains(t, string(data), "wordCount", "non-matching file untouched")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
			}

			args := append([]string{dir}, tt.args...)
			err := runCommand(t, args...)
			if tt.wantErr {
				require.Error(t, err, "command should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error should explain the failure")
			} else {
				require.NoError(t, err, "command should succeed")
			}
			if tt.validate != nil {
				tt.validate(t, dir)
			}
		})
	}
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Reviews1.json"), []byte(`[{"body":"one two"}]`), 0644))

	configPath := filepath.Join(dir, ".reviewwc.yaml")
	configContent := `
text_field: body
count_field: words
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	err := runCommand(t, dir, "--config", configPath)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Reviews1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"words": 2`, "count written under configured field")
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	err := runCommand(t, "a", "b")
	assert.Error(t, err, "at most one positional argument")
}
