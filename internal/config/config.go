package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Store is the dotted-key configuration surface the coordinator queries.
// Keys follow the `<namespace>.<tool>.<field>` form, e.g. "mergetool.meld.cmd"
// or "difftool.kdiff3.path", plus the top-level "merge.tool" / "diff.tool"
// selection keys.
type Store struct {
	v *viper.Viper
}

// New returns an empty in-memory store. Tests and callers that manage their
// own sources populate it with Set.
func New() *Store {
	return &Store{v: viper.New()}
}

// Load reads the user-level config file (~/.mergepick/config.yaml) and, when
// present, merges a repository-local .mergepick.yaml over it.
func Load() (*Store, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, ".mergepick"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if wd, err := os.Getwd(); err == nil {
		local := filepath.Join(wd, ".mergepick.yaml")
		if _, err := os.Stat(local); err == nil {
			v.SetConfigFile(local)
			if err := v.MergeInConfig(); err != nil {
				return nil, err
			}
		}
	}

	return &Store{v: v}, nil
}

// GetString returns the value for a dotted key and whether it was set at all.
// An empty configured value is reported as present.
func (s *Store) GetString(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// GetBool parses "true"/"false" values; an absent or malformed value is false.
func (s *Store) GetBool(key string) bool {
	return s.v.GetBool(key)
}

func (s *Store) Set(key string, value any) {
	s.v.Set(key, value)
}
