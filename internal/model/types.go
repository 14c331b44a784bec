// Package model defines shared data structures.
package model

// Passage sources.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceWords   = "words"
)

// Config defines practice settings resolved from flags and the config file.
type Config struct {
	Source       string
	PassagesPath string
	Lang         string
	WordListPath string
	Words        int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	Sound        string
}

// Theme holds the hex colors of the typing view.
type Theme struct {
	Correct   string
	Incorrect string
	Current   string
	Pending   string
	Stats     string
	Accent    string
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		Correct:   "#FFFFFF",
		Incorrect: "#FF6464",
		Current:   "#FFC832",
		Pending:   "#646464",
		Stats:     "#969696",
		Accent:    "#FFC832",
	}
}
