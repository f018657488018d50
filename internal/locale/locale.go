package locale

// Language lookup tables for the legal assistant. Every lookup falls back
// to DefaultLanguage when the requested code has no entry; missing-language
// fallback is intentional behavior, not an error.

const DefaultLanguage = "en"

// Supported language codes, as selected at session creation.
var Supported = []string{"en", "hi", "ta", "te", "bn", "kn", "mr", "gu", "pa", "ur"}

// IsSupported reports whether code is one of the selectable languages.
func IsSupported(code string) bool {
	for _, c := range Supported {
		if c == code {
			return true
		}
	}
	return false
}

// Normalize maps an arbitrary code to a supported one.
func Normalize(code string) string {
	if IsSupported(code) {
		return code
	}
	return DefaultLanguage
}

func pick(table map[string]string, language string) string {
	if s, ok := table[language]; ok {
		return s
	}
	return table[DefaultLanguage]
}
