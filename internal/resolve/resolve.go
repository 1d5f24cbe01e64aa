package resolve

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mergepick/mergepick/internal/config"
	"github.com/mergepick/mergepick/internal/log"
	"github.com/mergepick/mergepick/internal/tool"
)

// Options are the caller-side inputs to tool resolution.
type Options struct {
	// Tool is an explicitly requested tool name. Explicit intent is not
	// second-guessed: an invalid or missing explicit tool is fatal.
	Tool string

	// GUI prefers the guitool config keys over the plain tool keys.
	GUI bool
}

// Resolution is everything the invoker needs for one run. Created per run,
// discarded after the status is returned.
type Resolution struct {
	Tool string

	// Cmd is the configured command string, empty when the built-in
	// procedure should run instead.
	Cmd string

	// Path is the executable the tool resolves to. Unused when Cmd is set.
	Path string

	// Descriptor is nil for unregistered tools driven purely by Cmd.
	Descriptor *tool.Descriptor

	TrustExitCode bool
}

// Resolve picks a tool per the precedence contract and resolves its command
// and path. All fatal paths return a descriptive error; recoverable
// configuration errors are warned and fall through to guessing.
func Resolve(ctx context.Context, reg *tool.Registry, cfg *config.Store, mode tool.Mode, opts Options) (*Resolution, error) {
	name := opts.Tool
	if name == "" {
		picked, err := PickTool(ctx, reg, cfg, mode, opts.GUI)
		if err != nil {
			return nil, err
		}
		name = picked
	} else if _, err := reg.Setup(name, mode); err != nil {
		// An explicitly requested tool must be registered and
		// mode-compatible, unless a configured command makes it usable.
		if _, hasCmd := Cmd(cfg, mode, name); !hasCmd {
			return nil, err
		}
	}

	res := &Resolution{Tool: name}

	if d, err := reg.Setup(name, mode); err == nil {
		res.Descriptor = d
	}

	if cmd, ok := Cmd(cfg, mode, name); ok {
		res.Cmd = cmd
	}

	if path, ok := Path(cfg, mode, name); ok {
		res.Path = path
	} else if res.Descriptor != nil {
		res.Path = res.Descriptor.ExecutablePath()
	} else {
		res.Path = name
	}

	// Without a configured command the executable itself must be reachable.
	if res.Cmd == "" {
		if res.Descriptor == nil {
			return nil, errors.Errorf("unknown %s tool %s has no configured command", mode, name)
		}
		if _, err := reg.LookPath(res.Path); err != nil {
			return nil, errors.Errorf("the %s tool %s is not available as '%s'", mode, name, res.Path)
		}
	}

	if mode.IsMerge() {
		res.TrustExitCode = cfg.GetBool(mode.Namespace() + "." + name + ".trustExitCode")
	}

	return res, nil
}

// PickTool returns the configured tool when it passes validation, otherwise
// warns and falls back to guessing. A guess that comes up empty is fatal.
func PickTool(ctx context.Context, reg *tool.Registry, cfg *config.Store, mode tool.Mode, gui bool) (string, error) {
	if name, ok := ConfiguredTool(cfg, mode, gui); ok {
		err := validate(reg, cfg, mode, name)
		if err == nil {
			return name, nil
		}
		log.From(ctx).Warn("ignoring configured "+mode.String()+" tool", zap.String("tool", name), zap.Error(err))
	}

	return Guess(ctx, reg, mode, SignalsFromEnv())
}

// validate decides whether a configured name is usable at all: it must be
// registered and mode-compatible, or unregistered with a configured command.
func validate(reg *tool.Registry, cfg *config.Store, mode tool.Mode, name string) error {
	_, err := reg.Setup(name, mode)
	if err == nil {
		return nil
	}
	if errors.Is(err, tool.ErrUnregistered) {
		if _, hasCmd := Cmd(cfg, mode, name); hasCmd {
			return nil
		}
	}
	return err
}

// ConfiguredTool reads the selection keys. Diff mode falls back to the merge
// keys; merge mode reads only its own. The gui variant of each key is
// consulted first when requested.
func ConfiguredTool(cfg *config.Store, mode tool.Mode, gui bool) (string, bool) {
	var keys []string
	if mode.IsDiff() {
		if gui {
			keys = append(keys, "diff.guitool", "merge.guitool")
		}
		keys = append(keys, "diff.tool", "merge.tool")
	} else {
		if gui {
			keys = append(keys, "merge.guitool")
		}
		keys = append(keys, "merge.tool")
	}

	for _, key := range keys {
		if name, ok := cfg.GetString(key); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// Cmd looks up the configured command string for a tool. Diff mode checks
// difftool.<name>.cmd first, then falls back to mergetool.<name>.cmd.
func Cmd(cfg *config.Store, mode tool.Mode, name string) (string, bool) {
	return toolField(cfg, mode, name, "cmd")
}

// Path looks up an explicitly configured executable path, with the same
// namespace fallback as Cmd.
func Path(cfg *config.Store, mode tool.Mode, name string) (string, bool) {
	return toolField(cfg, mode, name, "path")
}

func toolField(cfg *config.Store, mode tool.Mode, name, field string) (string, bool) {
	if mode.IsDiff() {
		if v, ok := cfg.GetString(mode.Namespace() + "." + name + "." + field); ok {
			return v, true
		}
	}
	return cfg.GetString(tool.ModeMerge.Namespace() + "." + name + "." + field)
}
