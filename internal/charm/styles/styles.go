package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Emphasized = lipgloss.NewStyle().Bold(true).Foreground(Colors.WhiteBlackAdaptive)

	Info    = Emphasized.Foreground(Colors.Blue)
	Warning = Emphasized.Foreground(Colors.Yellow)
	Error   = Emphasized.Foreground(Colors.Red)
	Success = Emphasized.Foreground(Colors.Green)

	Dimmed       = lipgloss.NewStyle().Foreground(Colors.Grey)
	DimmedItalic = Dimmed.Italic(true)
	Help         = DimmedItalic

	None = lipgloss.NewStyle()

	Colors = struct {
		Yellow, Red, Green, Grey, WhiteBlackAdaptive, Blue lipgloss.AdaptiveColor
	}{
		Yellow:             lipgloss.AdaptiveColor{Dark: "#E5C07B", Light: "#986801"},
		Red:                lipgloss.AdaptiveColor{Dark: "#E06C75", Light: "#A0141E"},
		Green:              lipgloss.AdaptiveColor{Dark: "#98C379", Light: "#50A14F"},
		Grey:               lipgloss.AdaptiveColor{Dark: "#8A887D", Light: "#68675F"},
		WhiteBlackAdaptive: lipgloss.AdaptiveColor{Dark: "#F3F0E3", Light: "#16150E"},
		Blue:               lipgloss.AdaptiveColor{Dark: "#61AFEF", Light: "#1D2A3A"},
	}
)
