// Package slug holds the pure string transforms the importer derives local
// identifiers from: post slugs and display-safe category names.
package slug

import (
	"strconv"
	"strings"
)

// legacyScanLimit caps how far Legacy scans into a title. Kept for
// slug-compatibility with posts imported by earlier deployments.
const legacyScanLimit = 60

// Make derives a URL slug from a title: lowercase, every run of
// non-alphanumeric characters collapsed to a single dash, no leading or
// trailing dash. Pure and deterministic.
func Make(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var sb strings.Builder
	sb.Grow(len(title))
	prevDash := false
	for _, c := range title {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			sb.WriteRune(c)
			prevDash = false
		default:
			if !prevDash {
				sb.WriteByte('-')
				prevDash = true
			}
		}
	}

	return strings.Trim(sb.String(), "-")
}

// Legacy derives the id-suffixed slug used by the original feed handler. It
// differs from Make in two inherited quirks: only a fixed punctuation set
// maps to a dash (other symbols are dropped outright) and scanning stops
// after the sixtieth character.
func Legacy(title string, id int64) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var sb strings.Builder
	prevDash := false
	for i, c := range []rune(title) {
		switch {
		case c == ' ' || c == ',' || c == '.' || c == '/' || c == '\\' || c == '-':
			if !prevDash {
				sb.WriteByte('-')
				prevDash = true
			}
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'):
			sb.WriteRune(c)
			prevDash = false
		}
		if i == legacyScanLimit {
			break
		}
	}

	s := strings.TrimSuffix(sb.String(), "-")
	return s + "-" + strconv.FormatInt(id, 10)
}

// CategoryName normalizes an upstream category name for the host store. The
// host treats an ASCII hyphen as a hierarchy separator, so hyphens are
// swapped for an en dash.
func CategoryName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "-", "–")
}
