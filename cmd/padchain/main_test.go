package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/keypad"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun(t *testing.T) {
	path := writeInput(t, "029A\n980A\n179A\n456A\n379A\n")

	var out bytes.Buffer
	require.NoError(t, run(path, 2, 2, false, &out))
	assert.Equal(t, "126384\n", out.String())

	out.Reset()
	require.NoError(t, run(path, 2, 1, true, &out))
	assert.Equal(t, "126384\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run(filepath.Join(t.TempDir(), "missing.txt"), 2, 1, false, &out)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run(writeInput(t, "029A\n02B\n"), 2, 1, false, &out)
	assert.ErrorIs(t, err, keypad.ErrInvalidKey)

	err = run(writeInput(t, "029A\n"), -1, 1, false, &out)
	assert.ErrorIs(t, err, chain.ErrNegativeLayers)
	assert.Empty(t, out.String())
}
