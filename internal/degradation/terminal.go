package degradation

import "strings"

// Terminal identifies a fuel terminal selectable on the dashboard.
type Terminal string

// Terminal constants
const (
	TerminalJakarta    Terminal = "T1"
	TerminalSurabaya   Terminal = "T2"
	TerminalMedan      Terminal = "T3"
	TerminalBalikpapan Terminal = "T4"
)

var terminalCities = map[Terminal]string{
	TerminalJakarta:    "Jakarta",
	TerminalSurabaya:   "Surabaya",
	TerminalMedan:      "Medan",
	TerminalBalikpapan: "Balikpapan",
}

// Terminals returns all terminals in display order.
func Terminals() []Terminal {
	return []Terminal{TerminalJakarta, TerminalSurabaya, TerminalMedan, TerminalBalikpapan}
}

// Valid reports whether t is a known terminal.
func (t Terminal) Valid() bool {
	_, ok := terminalCities[t]
	return ok
}

// City returns the terminal's city.
func (t Terminal) City() string {
	return terminalCities[t]
}

// DisplayName returns the human-readable terminal name, e.g. "Terminal Jakarta (T1)".
func (t Terminal) DisplayName() string {
	if !t.Valid() {
		return string(t)
	}
	return "Terminal " + t.City() + " (" + string(t) + ")"
}

// ParseTerminal accepts a code ("t1") or a city name ("jakarta").
func ParseTerminal(s string) (Terminal, bool) {
	s = strings.TrimSpace(s)
	for _, t := range Terminals() {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.City()) || strings.EqualFold(s, t.DisplayName()) {
			return t, true
		}
	}
	return "", false
}
