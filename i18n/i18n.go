package i18n

import (
	"log"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang = "en"

var translations = map[string]map[string]string{
	"Screen Cover": {
		"pt": "Cobertura de Tela",
		"es": "Cubierta de Pantalla",
		"ru": "Заслонка экрана",
	},
	"Global hotkeys unavailable": {
		"pt": "Atalhos globais indisponíveis",
		"es": "Atajos globales no disponibles",
		"ru": "Глобальные сочетания клавиш недоступны",
	},
	"The cover can no longer be toggled from the keyboard.": {
		"pt": "A cobertura não pode mais ser alternada pelo teclado.",
		"es": "La cubierta ya no se puede alternar desde el teclado.",
		"ru": "Заслонку больше нельзя переключать с клавиатуры.",
	},
}

// Setup selects the language. A non-empty forced value wins over the
// system locale.
func Setup(forced string) {
	if forced = strings.TrimSpace(forced); forced != "" {
		log.Printf("Language forced to: '%s'", forced)
		lang = normalize(forced)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		lang = "en"
		return
	}

	log.Printf("Detected user locale: %s", userLocales[0])
	lang = normalize(userLocales[0])
	log.Printf("Language set to: %s", lang)
}

func normalize(locale string) string {
	for _, prefix := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(strings.ToLower(locale), prefix) {
			return prefix
		}
	}
	return "en"
}

// T translates key into the current language, falling back to key.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// GetLang returns the current language code.
func GetLang() string {
	return lang
}
