package config

import "fmt"

// DarkModeStrategy selects how the dark: variant is compiled.
type DarkModeStrategy string

const (
	// DarkModeStrategyMedia emits a prefers-color-scheme media query.
	DarkModeStrategyMedia DarkModeStrategy = "media"
	// DarkModeStrategyClass scopes dark rules under an ancestor class.
	DarkModeStrategyClass DarkModeStrategy = "class"
)

// ParseDarkModeStrategy converts a configuration string to a strategy.
func ParseDarkModeStrategy(s string) (DarkModeStrategy, error) {
	switch DarkModeStrategy(s) {
	case DarkModeStrategyMedia, DarkModeStrategyClass:
		return DarkModeStrategy(s), nil
	default:
		return "", fmt.Errorf("unknown dark mode strategy %q", s)
	}
}

func (s DarkModeStrategy) String() string {
	return string(s)
}
