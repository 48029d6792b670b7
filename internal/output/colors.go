package output

import "github.com/fatih/color"

// ColorScheme defines the colors used for different elements of the console
// output.
type ColorScheme struct {
	Header *color.Color
	Bar    *color.Color
	Mode   *color.Color
	Good   *color.Color
	Warn   *color.Color
	Error  *color.Color
	Dim    *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header: color.New(color.FgCyan, color.Bold),
		Bar:    color.New(color.FgCyan),
		Mode:   color.New(color.FgMagenta),
		Good:   color.New(color.FgGreen),
		Warn:   color.New(color.FgYellow),
		Error:  color.New(color.FgRed, color.Bold),
		Dim:    color.New(color.Faint),
	}
}

// NoColorScheme returns a scheme with all colors disabled, for non-TTY
// writers and --quiet logs.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	scheme.Header.DisableColor()
	scheme.Bar.DisableColor()
	scheme.Mode.DisableColor()
	scheme.Good.DisableColor()
	scheme.Warn.DisableColor()
	scheme.Error.DisableColor()
	scheme.Dim.DisableColor()
	return scheme
}
