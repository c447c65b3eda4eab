package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"routes"})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "GET /community/posts/{postId}")
	assert.Contains(t, text, "GET /metrics")
	assert.Contains(t, text, "board:free")
	assert.Regexp(t, `(?m)^/login\s+-\s+-$`, text)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "coala dev\n", out.String())
}

func TestServe_RejectsBadConfig(t *testing.T) {
	t.Setenv("COALA_ENV", "staging")
	cmd := rootCmd()
	cmd.SetArgs([]string{"serve"})
	assert.Error(t, cmd.Execute())
}
