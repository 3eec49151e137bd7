package i18n

// LocalizedString holds one text per language.
type LocalizedString map[Language]string

// Get returns the text for lang, falling back to English.
func (s LocalizedString) Get(lang Language) string {
	if v, ok := s[lang]; ok && v != "" {
		return v
	}
	return s[English]
}

// Valid reports whether the English text, which every lookup can fall back to, is present.
func (s LocalizedString) Valid() bool {
	return s[English] != ""
}
