package util

import "github.com/fatih/color"

var colorsOptions = map[string]color.Attribute{
	"red":       color.FgHiRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"blue":      color.FgBlue,
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"faint":     color.Faint,
	"underline": color.Underline,
	"bold":      color.Bold,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
}

// ColorOutput wraps text in the named attributes. Unknown names are ignored.
// Nothing is added when color output is disabled.
func ColorOutput(text string, colorOptions ...string) string {
	attributes := []color.Attribute{}
	for _, option := range colorOptions {
		if o, ok := colorsOptions[option]; ok {
			attributes = append(attributes, o)
		}
	}
	c := color.New(attributes...)
	return c.Sprint(text)
}

// SetColor turns colored output on or off for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}
