package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// Enabled reports whether highlighting is allowed. BRILCHECK_NO_COLOR
// turns it off.
func Enabled() bool {
	return os.Getenv("BRILCHECK_NO_COLOR") == ""
}

// getJSONLexer returns the JSON lexer, falling back to JavaScript
func getJSONLexer() chroma.Lexer {
	candidates := []string{"json", "JSON", "javascript"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return chroma.Coalesce(lexer)
		}
	}
	return nil
}

// getJSONStyle returns the IR style with fallbacks
func getJSONStyle() *chroma.Style {
	candidates := []string{"bril-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	// Try high-color first, then fallback
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// ColorizeJSON applies syntax highlighting to a JSON document. The input is
// returned unchanged when colors are disabled or no lexer is available.
func ColorizeJSON(code string) (string, error) {
	if !Enabled() {
		return code, nil
	}

	lexer := getJSONLexer()
	if lexer == nil {
		return code, nil
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, err
	}

	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getJSONStyle(), iterator); err != nil {
		return code, err
	}
	return buf.String(), nil
}

// StripANSI removes terminal escape sequences, colors and cursor or title
// control alike.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
