package seeder

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	accentReplacer = strings.NewReplacer(
		"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
		"è", "e", "é", "e", "ê", "e", "ë", "e",
		"ì", "i", "í", "i", "î", "i", "ï", "i",
		"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
		"ù", "u", "ú", "u", "û", "u", "ü", "u",
		"ç", "c",
	)
	nonSlug = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercases name, folds the common Latin accents to ASCII and
// collapses everything else into single hyphens.
func Slugify(name string) string {
	s := accentReplacer.Replace(strings.ToLower(name))
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugSequence appends an increasing counter so that equal names still get
// distinct slugs.
type SlugSequence struct {
	next int
}

func (s *SlugSequence) Next(name string) string {
	slug := Slugify(name) + "-" + strconv.Itoa(s.next)
	s.next++
	return slug
}
