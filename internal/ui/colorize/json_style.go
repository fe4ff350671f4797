package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// BrilDark is the style used for instruction listings. Object keys carry the
// opcode and operand field names, so they get the strongest color.
var BrilDark = styles.Register(chroma.MustNewStyle("bril-dark", chroma.StyleEntries{
	chroma.Text:       "#D4D4D4",
	chroma.Background: "bg:#1e1e1e",

	chroma.NameTag:      "#9CDCFE", // keys
	chroma.NameProperty: "#9CDCFE",

	chroma.String:       "#EACD53",
	chroma.StringDouble: "#EACD53",

	chroma.LiteralNumber:        "#FF5F87",
	chroma.LiteralNumberInteger: "#FF5F87",
	chroma.LiteralNumberFloat:   "#FF5F87",

	chroma.KeywordConstant: "#569CD6", // true, false, null
	chroma.Punctuation:     "#808080",
}))
