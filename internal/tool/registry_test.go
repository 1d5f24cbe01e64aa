package tool_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergepick/mergepick/internal/tool"
)

func testRegistry(available map[string]bool, display bool) *tool.Registry {
	return &tool.Registry{
		Loader: tool.Builtin(),
		LookPath: func(file string) (string, error) {
			if available[file] {
				return "/usr/bin/" + file, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		Display: func() bool { return display },
	}
}

func TestSetup_UnregisteredNames(t *testing.T) {
	reg := testRegistry(nil, true)

	for _, name := range []string{"", "no-such-tool", "Meld", "meld2", "../meld"} {
		_, err := reg.Setup(name, tool.ModeMerge)
		assert.ErrorIs(t, err, tool.ErrUnregistered, "name %q", name)
	}
}

func TestSetup_ModeCompatibility(t *testing.T) {
	reg := testRegistry(nil, true)

	var mismatch *tool.ModeMismatchError

	_, err := reg.Setup("kompare", tool.ModeMerge)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "kompare", mismatch.Tool)

	_, err = reg.Setup("tortoisemerge", tool.ModeDiff)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "tortoisemerge", mismatch.Tool)

	// and the modes they do support load fine
	_, err = reg.Setup("kompare", tool.ModeDiff)
	assert.NoError(t, err)
	_, err = reg.Setup("tortoisemerge", tool.ModeMerge)
	assert.NoError(t, err)
}

func TestSetup_DescriptorDefaults(t *testing.T) {
	loader := &stubLoader{entries: map[string]func(*tool.Descriptor){
		"plain": func(*tool.Descriptor) {},
	}}
	reg := &tool.Registry{
		Loader:   loader,
		LookPath: func(string) (string, error) { return "", errors.New("nope") },
		Display:  func() bool { return false },
	}

	d, err := reg.Setup("plain", tool.ModeDiff)
	require.NoError(t, err)

	assert.True(t, d.CanDiff)
	assert.True(t, d.CanMerge)
	assert.False(t, d.GUIOnly)
	assert.Equal(t, "plain", d.ExecutablePath())

	// default procedures fail with status 1
	assert.Equal(t, 1, d.Diff(context.Background(), tool.Invocation{}))
	assert.Equal(t, 1, d.Merge(context.Background(), tool.Invocation{}))
}

func TestSetup_PathTranslation(t *testing.T) {
	reg := testRegistry(nil, true)

	for name, want := range map[string]string{
		"araxis":   "compare",
		"bc3":      "bcompare",
		"emerge":   "emacs",
		"gvimdiff": "gvim",
		"vimdiff":  "vim",
		"meld":     "meld",
	} {
		d, err := reg.Setup(name, tool.ModeMerge)
		require.NoError(t, err, name)
		assert.Equal(t, want, d.ExecutablePath(), name)
	}

	// codecompare ships separate diff and merge binaries
	d, err := reg.Setup("codecompare", tool.ModeMerge)
	require.NoError(t, err)
	assert.Equal(t, "CodeMerge", d.ExecutablePath())

	d, err = reg.Setup("codecompare", tool.ModeDiff)
	require.NoError(t, err)
	assert.Equal(t, "CodeCompare", d.ExecutablePath())
}

func TestIsAvailable(t *testing.T) {
	reg := testRegistry(map[string]bool{"vim": true, "meld": true, "somecmd": true}, true)

	// availability goes through path translation
	assert.True(t, reg.IsAvailable("vimdiff", tool.ModeDiff))
	assert.False(t, reg.IsAvailable("gvimdiff", tool.ModeDiff))

	assert.True(t, reg.IsAvailable("meld", tool.ModeDiff))
	assert.False(t, reg.IsAvailable("kdiff3", tool.ModeDiff))

	// unregistered names translate to themselves
	assert.True(t, reg.IsAvailable("somecmd", tool.ModeDiff))
	assert.False(t, reg.IsAvailable("othercmd", tool.ModeDiff))
}

func TestIsAvailable_GUIOnlyNeedsDisplay(t *testing.T) {
	installed := map[string]bool{"meld": true, "vim": true}

	withDisplay := testRegistry(installed, true)
	assert.True(t, withDisplay.IsAvailable("meld", tool.ModeMerge))

	headless := testRegistry(installed, false)
	assert.False(t, headless.IsAvailable("meld", tool.ModeMerge))
	// terminal tools are unaffected
	assert.True(t, headless.IsAvailable("vimdiff", tool.ModeMerge))
}

func TestFilter(t *testing.T) {
	reg := testRegistry(map[string]bool{"meld": true, "vim": true, "kompare": true}, true)

	var usable []string
	for line := range reg.Filter(tool.ModeMerge, true, "  ") {
		usable = append(usable, line)
	}
	assert.Equal(t, []string{"  meld", "  vimdiff"}, usable)

	var unavailable []string
	for line := range reg.Filter(tool.ModeMerge, false, "") {
		unavailable = append(unavailable, line)
	}

	// kompare is installed but diff-only, so merge mode excludes it entirely
	assert.NotContains(t, unavailable, "kompare")
	assert.Contains(t, unavailable, "kdiff3")
	assert.Contains(t, unavailable, "tortoisemerge")

	var diffUsable []string
	for line := range reg.Filter(tool.ModeDiff, true, "") {
		diffUsable = append(diffUsable, line)
	}
	assert.Equal(t, []string{"kompare", "meld", "vimdiff"}, diffUsable)
}

func TestFilter_LazyStop(t *testing.T) {
	reg := testRegistry(map[string]bool{"meld": true, "vim": true}, true)

	var first string
	for line := range reg.Filter(tool.ModeMerge, true, "") {
		first = line
		break
	}
	assert.Equal(t, "meld", first)
}

func TestAnyGUIOnly(t *testing.T) {
	reg := testRegistry(nil, true)

	assert.True(t, reg.AnyGUIOnly([]string{"vimdiff", "meld"}, tool.ModeMerge))
	assert.False(t, reg.AnyGUIOnly([]string{"vimdiff", "emerge"}, tool.ModeMerge))
	assert.False(t, reg.AnyGUIOnly(nil, tool.ModeMerge))
}

func TestModePredicates(t *testing.T) {
	assert.True(t, tool.ModeDiff.IsDiff())
	assert.False(t, tool.ModeDiff.IsMerge())
	assert.True(t, tool.ModeMerge.IsMerge())
	assert.False(t, tool.ModeMerge.IsDiff())

	assert.Equal(t, "difftool", tool.ModeDiff.Namespace())
	assert.Equal(t, "mergetool", tool.ModeMerge.Namespace())
	assert.Equal(t, "diff", tool.ModeDiff.String())
	assert.Equal(t, "merge", tool.ModeMerge.String())
}

type stubLoader struct {
	entries map[string]func(*tool.Descriptor)
}

func (l *stubLoader) Load(name string) (func(*tool.Descriptor), bool) {
	overlay, ok := l.entries[name]
	return overlay, ok
}

func (l *stubLoader) Names() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	return names
}
