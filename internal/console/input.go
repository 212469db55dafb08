package console

import (
	"strings"

	"golang.org/x/text/cases"
)

// IsQuit reports whether an input line is the quit token. Everything else,
// including an empty line, means "roll".
func IsQuit(line string) bool {
	return cases.Fold().String(strings.TrimSpace(line)) == QuitToken
}
