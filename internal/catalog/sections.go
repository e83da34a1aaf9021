package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Section is one of the five fixed storefront groupings. The set is defined at
// process start and never changes at runtime.
type Section struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"img"`

	// labels holds the normalized category labels this section accepts.
	labels []string
}

// Declaration order is the classification tie-break: the first section whose
// label set contains the normalized input wins.
var sections = []Section{
	{
		Key:         "picoles",
		Title:       "Nossos Picolés",
		Description: "O frescor da fruta no palito, direto do Ceará.",
		Image:       "https://i.imgur.com/mJfOgah.jpeg",
		labels:      []string{"picole"},
	},
	{
		Key:         "potes-2l",
		Title:       "Potes de 2 Litros",
		Description: "Cremosidade em família para os melhores momentos.",
		Image:       "https://i.imgur.com/4YnqlcT.jpeg",
		labels:      []string{"pote", "potes"},
	},
	{
		Key:         "acai",
		Title:       "Energia Açaí",
		Description: "O autêntico sabor da energia pura.",
		Image:       "https://i.imgur.com/VWPnpF8.jpeg",
		labels:      []string{"acai"},
	},
	{
		Key:         "gourmet",
		Title:       "Linha Gourmet",
		Description: "Experiências exclusivas para paladares exigentes.",
		Image:       "https://i.imgur.com/o9FoKWl.jpeg",
		labels:      []string{"gourmet"},
	},
	{
		Key:         "gelo",
		Title:       "Gelo Sabor",
		Description: "Refrescância pura para os dias quentes.",
		Image:       "https://res.cloudinary.com/domma0qk3/image/upload/v1770150028/gelo_sabor_energetico-Photoroom_eiwshm.png",
		labels:      []string{"gelo"},
	},
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics, lowercases, and trims the raw category label so
// that accent/case variants compare equal ("Picolé", "PICOLE ", "picole").
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Sections returns the fixed section list in declaration order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// SectionByKey looks up a section by its key.
func SectionByKey(key string) (Section, bool) {
	for _, section := range sections {
		if section.Key == key {
			return section, true
		}
	}
	return Section{}, false
}

// Classify maps a raw category label to its section. Unknown labels classify
// to none and are excluded from every section view.
func Classify(rawCategory string) (Section, bool) {
	normalized := Normalize(rawCategory)
	for _, section := range sections {
		for _, label := range section.labels {
			if normalized == label {
				return section, true
			}
		}
	}
	return Section{}, false
}

// Matches reports whether the raw category label belongs to this section.
func (s Section) Matches(rawCategory string) bool {
	normalized := Normalize(rawCategory)
	for _, label := range s.labels {
		if normalized == label {
			return true
		}
	}
	return false
}
