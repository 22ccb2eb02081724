package entity

const (
	DefaultTheme  = "dark"
	DefaultLocale = "en"

	// SearchHistoryLimit caps the per-user recent search list.
	SearchHistoryLimit = 10
)

var validThemes = map[string]bool{
	"dark":  true,
	"light": true,
	"neon":  true,
}

var validLocales = map[string]bool{
	"en": true,
	"es": true,
}

func IsValidTheme(id string) bool {
	return validThemes[id]
}

func IsValidLocale(id string) bool {
	return validLocales[id]
}
