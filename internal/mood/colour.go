package mood

// markers are prepended to entry headers when colouring is enabled.
var markers = map[string]string{
	Rad:     "🟢",
	Good:    "🔵",
	Neutral: "🟣",
	Bad:     "🟠",
	Awful:   "🔴",
}

// terminal colours (ANSI 256) used when the registry is shown in a terminal.
var terminalColours = map[string]string{
	Rad:     "42",
	Good:    "39",
	Neutral: "141",
	Bad:     "208",
	Awful:   "196",
}

// Marker returns the colour marker for group, or "" for an unknown group.
func Marker(group string) string {
	return markers[group]
}

// TerminalColour returns the ANSI 256 colour code for group, or "" for an unknown group.
func TerminalColour(group string) string {
	return terminalColours[group]
}
