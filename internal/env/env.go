package env

import "os"

// Returns true if a graphical display is reachable. Candidate ordering and
// the usability of GUI-only tools both depend on this.
func DisplayPresent() bool {
	return os.Getenv("DISPLAY") != ""
}

func HasDesktopSession() bool {
	return os.Getenv("GNOME_DESKTOP_SESSION_ID") != ""
}

// PreferredEditor returns VISUAL, falling back to EDITOR.
func PreferredEditor() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	return os.Getenv("EDITOR")
}

// WorkdirPrefix is the subdirectory the coordinator was invoked from,
// relative to the repository root. Set by the calling VCS.
func WorkdirPrefix() string {
	return os.Getenv("GIT_PREFIX")
}

func IsCI() bool {
	return os.Getenv("CI") == "true"
}
