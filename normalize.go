package synonomous

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Folded wraps a transformer so accented labels produce ASCII-clean
// synonyms: the label is decomposed, stripped of combining marks, and
// recomposed before next runs (e.g. "crème-brûlée" reaches ToCamelCase as
// "creme-brulee"). Register the wrapped transformer under its own name to
// use it in a selection:
//
//	synonomous.Register("toFoldedCamelCase", synonomous.Folded(synonomous.ToCamelCase))
func Folded(next Transformer) Transformer {
	return func(s string) string {
		folded, _, err := transform.String(foldChain, s)
		if err != nil {
			folded = s
		}
		return next(folded)
	}
}
