package order

import (
	"strings"

	"github.com/guildboard/blackboard/internal/models"
)

// legacyPrefixes are spellings older orders carried before prefixes
// moved into the locale files
var legacyPrefixes = []string{"buy:", "sell:", "ankauf:", "verkauf:"}

func prefixKey(kind models.OrderKind) string {
	if kind == models.OrderKindSell {
		return "title.prefix.sell"
	}
	return "title.prefix.buy"
}

// stripTitlePrefix removes any known kind prefix from the front of a
// title, in any loaded language, so re-prefixing never stacks
func (s *service) stripTitlePrefix(title string) string {
	prefixes := make([]string, 0, 8)
	for _, lang := range s.translator.Languages() {
		prefixes = append(prefixes,
			s.translator.T(lang, "title.prefix.buy", nil),
			s.translator.T(lang, "title.prefix.sell", nil))
	}
	prefixes = append(prefixes, legacyPrefixes...)

	title = strings.TrimSpace(title)
	for stripped := true; stripped; {
		stripped = false
		for _, prefix := range prefixes {
			if prefix == "" {
				continue
			}
			if len(title) >= len(prefix) && strings.EqualFold(title[:len(prefix)], prefix) {
				title = strings.TrimSpace(title[len(prefix):])
				stripped = true
			}
		}
	}
	return title
}

// applyTitlePrefix prepends the localized kind prefix to a bare title
func (s *service) applyTitlePrefix(kind models.OrderKind, lang, title string) string {
	prefix := s.translator.T(lang, prefixKey(kind), nil)
	bare := s.stripTitlePrefix(title)
	if prefix == "" {
		return bare
	}
	return prefix + " " + bare
}
