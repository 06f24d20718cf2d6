package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout.String(), "templet render")
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"frobnicate"}, &stdout, &stderr)
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stdout.String(), ErrMsgUnknownCommand)
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout.String(), "templet")
}

func TestRunRender_Success(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "page.tpl")
	output := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte("<p>hello</p>"), 0o644))

	var stderr bytes.Buffer
	code := runRender([]string{"-o", output, input}, &stderr)
	require.Equal(t, ExitCodeSuccess, code, stderr.String())

	rendered, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", string(rendered))
}

func TestRunRender_MissingOutputFlag(t *testing.T) {
	var stderr bytes.Buffer
	code := runRender([]string{"input.tpl"}, &stderr)
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr.String(), ErrMsgMissingOutput)
}

func TestRunRender_MissingInput(t *testing.T) {
	var stderr bytes.Buffer
	code := runRender([]string{"-o", "out.html"}, &stderr)
	assert.Equal(t, ExitCodeUsageError, code)
}

func TestRunRender_UnreadableInput(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	code := runRender([]string{"-o", filepath.Join(dir, "out.html"), filepath.Join(dir, "missing.tpl")}, &stderr)
	assert.Equal(t, ExitCodeInputError, code)
	assert.Contains(t, stderr.String(), ErrMsgReadFileFailed)
}

func TestParseRenderFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "short flag", args: []string{"-o", "out.html", "in.tpl"}},
		{name: "long flag", args: []string{"-out", "out.html", "in.tpl"}},
		{name: "missing output", args: []string{"in.tpl"}, wantErr: true},
		{name: "missing input", args: []string{"-o", "out.html"}, wantErr: true},
		{name: "extra positional", args: []string{"-o", "out.html", "a.tpl", "b.tpl"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseRenderFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "out.html", cfg.outputPath)
			assert.Equal(t, "in.tpl", cfg.inputPath)
		})
	}
}
