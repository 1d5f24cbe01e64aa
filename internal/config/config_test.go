package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergepick/mergepick/internal/config"
)

func TestGetString(t *testing.T) {
	cfg := config.New()

	_, ok := cfg.GetString("merge.tool")
	assert.False(t, ok)

	cfg.Set("merge.tool", "meld")
	got, ok := cfg.GetString("merge.tool")
	require.True(t, ok)
	assert.Equal(t, "meld", got)

	// empty values still count as present
	cfg.Set("diff.tool", "")
	_, ok = cfg.GetString("diff.tool")
	assert.True(t, ok)
}

func TestGetString_DottedToolKeys(t *testing.T) {
	cfg := config.New()
	cfg.Set("mergetool.meld.cmd", `meld --output "$MERGED" "$LOCAL" "$BASE" "$REMOTE"`)
	cfg.Set("difftool.meld.path", "/usr/local/bin/meld")

	cmd, ok := cfg.GetString("mergetool.meld.cmd")
	require.True(t, ok)
	assert.Contains(t, cmd, "--output")

	path, ok := cfg.GetString("difftool.meld.path")
	require.True(t, ok)
	assert.Equal(t, "/usr/local/bin/meld", path)

	_, ok = cfg.GetString("mergetool.meld.path")
	assert.False(t, ok)
}

func TestGetBool(t *testing.T) {
	cfg := config.New()

	// absent defaults to false
	assert.False(t, cfg.GetBool("mergetool.meld.trustExitCode"))

	cfg.Set("mergetool.meld.trustExitCode", "true")
	assert.True(t, cfg.GetBool("mergetool.meld.trustExitCode"))

	cfg.Set("mergetool.meld.trustExitCode", "false")
	assert.False(t, cfg.GetBool("mergetool.meld.trustExitCode"))

	// malformed values read as false
	cfg.Set("mergetool.keepBackup", "yes please")
	assert.False(t, cfg.GetBool("mergetool.keepBackup"))
}
