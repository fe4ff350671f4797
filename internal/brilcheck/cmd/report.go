package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"brilcheck/internal/bril"
	"brilcheck/internal/brilcheck/styles"
)

// buildReport renders the summary of prog as markdown.
func buildReport(path string, prog *bril.Program) string {
	s := bril.Summarize(path, prog)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(s.Path))

	total := 0
	for _, fn := range s.Functions {
		total += fn.Instrs
	}
	fmt.Fprintf(&b, "**%d** function(s), **%d** instruction(s)\n", len(s.Functions), total)
	if len(s.Functions) == 0 {
		return b.String()
	}

	b.WriteString("\n| Function | Instructions |\n|---|---:|\n")
	for _, fn := range s.Functions {
		fmt.Fprintf(&b, "| %s | %d |\n", codeSpan(fn.Name), fn.Instrs)
	}
	return b.String()
}

// codeSpan wraps s in an inline code span inside a table cell. A backtick
// cannot be escaped inside a code span, so the fence is one backtick longer
// than the longest run in s.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	s = strings.ReplaceAll(s, "|", `\|`)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "|", `\|`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// writeMarkdown writes the report, rendered with glamour when render is set.
func writeMarkdown(w io.Writer, path string, prog *bril.Program, render bool) error {
	md := buildReport(path, prog)
	if !render {
		_, err := io.WriteString(w, md)
		return err
	}

	width := 80
	if tw, _, err := term.GetSize(os.Stdout.Fd()); err == nil && tw > 0 {
		width = tw
	}
	rendered, err := styles.RenderMarkdown(md, width-2)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}
