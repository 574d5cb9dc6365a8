package style

// Colors maps color names to their SGR foreground codes.
var Colors = map[string]int{
	"black":   30,
	"red":     31,
	"green":   32,
	"yellow":  33,
	"blue":    34,
	"magenta": 35,
	"cyan":    36,
	"white":   37,

	"bright_black":   90,
	"gray":           90,
	"bright_red":     91,
	"bright_green":   92,
	"bright_yellow":  93,
	"bright_blue":    94,
	"bright_magenta": 95,
	"bright_cyan":    96,
	"bright_white":   97,
}

// Modifiers maps text style names to their SGR codes.
var Modifiers = map[string]int{
	"bold":          1,
	"dimmed":        2,
	"italic":        3,
	"underline":     4,
	"blink":         5,
	"reversed":      7,
	"hidden":        8,
	"strikethrough": 9,
}

// colorOrder and modifierOrder fix the listing order of the vocabulary,
// which maps cannot give us.
var (
	colorOrder = []string{
		"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
		"bright_black", "gray", "bright_red", "bright_green", "bright_yellow",
		"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
	}
	modifierOrder = []string{
		"bold", "italic", "underline", "dimmed", "blink", "reversed", "hidden", "strikethrough",
	}
)

// ColorNames returns the known color names in table order.
func ColorNames() []string {
	return append([]string(nil), colorOrder...)
}

// ModifierNames returns the known modifier names in table order.
func ModifierNames() []string {
	return append([]string(nil), modifierOrder...)
}

// IsKnown reports whether name is a color or a modifier.
func IsKnown(name string) bool {
	if _, ok := Colors[name]; ok {
		return true
	}
	_, ok := Modifiers[name]
	return ok
}

// Code returns the SGR code for name, looking at colors first.
func Code(name string) (int, bool) {
	if code, ok := Colors[name]; ok {
		return code, true
	}
	code, ok := Modifiers[name]
	return code, ok
}
