package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewCLI()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTranslateArgument(t *testing.T) {
	out, err := run(t, "", "HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, `.... . .-.. .-.. --- \ .-- --- .-. .-.. -..`+"\n", out)
}

func TestTranslateStdin(t *testing.T) {
	out, err := run(t, ".- .-.-.- -...\n")
	require.NoError(t, err)
	assert.Equal(t, "A?B\n", out)

	out, err = run(t, "")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestTranslateFlags(t *testing.T) {
	out, err := run(t, "", "-s", "STOP", "-w", "_", "Hello! How are you?")
	require.NoError(t, err)
	assert.Equal(t, ".... . .-.. .-.. --- STOP _ .... --- .-- _ .- .-. . _ -.-- --- ..- STOP\n", out)

	out, err = run(t, "", "--unknown", "X", "--", ".....")
	require.NoError(t, err)
	assert.Equal(t, "X\n", out)

	out, err = run(t, "", "--direction", "decode", "SOS")
	require.NoError(t, err)
	assert.Equal(t, "?\n", out)
}

func TestTranslateEnv(t *testing.T) {
	t.Setenv("MORSE_UNKNOWN", "#")
	t.Setenv("MORSE_WORD_BOUNDARY", "|")

	out, err := run(t, ".- ........ | -...")
	require.NoError(t, err)
	assert.Equal(t, "A# B\n", out)

	// flags win over the environment
	out, err = run(t, ".- ........", "-u", "!")
	require.NoError(t, err)
	assert.Equal(t, "A!\n", out)
}

func TestTranslateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sentence-delimiter: '<s>'\nunknown: '*'\n"), 0o600))

	out, err := run(t, "", "--config", path, "Hi.")
	require.NoError(t, err)
	assert.Equal(t, ".... .. <s>\n", out)

	out, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "Hi")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestTranslateErrors(t *testing.T) {
	_, err := run(t, "", "--direction", "sideways", "SOS")
	require.Error(t, err)

	_, err = run(t, "", "--log-level", "loud", "SOS")
	require.Error(t, err)

	_, err = run(t, "", "--log-format", "xml", "SOS")
	require.Error(t, err)

	_, err = run(t, "", "one", "two")
	require.Error(t, err)
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "", "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 36)
	assert.Equal(t, "S ...", lines[18])
}

func TestServeRejectsBadSettings(t *testing.T) {
	_, err := run(t, "", "serve", "--cache-ttl", "-1s")
	require.Error(t, err)

	_, err = run(t, "", "serve", "--max-body", "0")
	require.Error(t, err)
}
