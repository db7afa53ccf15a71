package combat

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// modifierPattern matches "<stat> +5%", "<stat> 증가 5%" and "<stat> 5%".
var modifierPattern = regexp.MustCompile(`([\p{Hangul}A-Za-z][\p{Hangul}A-Za-z ]*?)\s*(?:\+|증가)?\s*(\d+(?:\.\d+)?)\s*%`)

// NormalizeName canonicalises a stat name so that API spellings compare equal:
// NFC composition, full-width folding, lower case and single spaces.
func NormalizeName(name string) string {
	s := norm.NFC.String(width.Fold.String(name))
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// ParseStatValue parses a display value such as "1,234", "+12" or "5.5%".
// ok is false for empty or non-numeric input, in which case value is 0.
func ParseStatValue(s string) (value float64, percent bool, ok bool) {
	s = strings.TrimSpace(width.Fold.String(s))
	if s == "" {
		return 0, false, false
	}
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	s = strings.TrimPrefix(s, "+")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, false
	}
	return v, percent, true
}

// ParseModifiers extracts every percentage increase phrase from free text.
func ParseModifiers(text string) []domain.Modifier {
	text = width.Fold.String(text)
	matches := modifierPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	mods := make([]domain.Modifier, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), "증가"))
		pct, err := strconv.ParseFloat(m[2], 64)
		if err != nil || name == "" {
			continue
		}
		mods = append(mods, domain.Modifier{Stat: NormalizeName(name), Percent: pct})
	}
	return mods
}
