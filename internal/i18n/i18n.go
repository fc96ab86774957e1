// Package i18n translates user-facing API messages. English is the fallback;
// German and Dutch are also shipped.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.api_key_required":       "API key is required",
			"error.invalid_api_key":        "Invalid API key",
			"error.not_found":              "Not found",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.timeout":                "Request timeout",
			"error.service_unavailable":    "Recipe store is temporarily unavailable",
			"error.recipe.not_found":       "Recipe not found",
			"error.recipe.incomplete":      "Recipe incomplete",
			"error.recipe.invalid_id":      "Recipe id must be a positive integer",
			"error.recipe.no_update_data":  "No update data provided",
			"error.shopping.no_recipes":    "No recipes provided",
			"error.shopping.lookup_failed": "Recipes could not be loaded",

			"error.recipe.history_unavailable": "Recipe history is not recorded",

			"success.welcome":        "Welcome to the recipe service",
			"success.recipe.deleted": "Recipe deleted",
		},
		"de": {
			"error.invalid_request":        "Ungültige Anfrage",
			"error.invalid_request_body":   "Ungültiger Anfrageinhalt",
			"error.internal_error":         "Ein unerwarteter Fehler ist aufgetreten",
			"error.api_key_required":       "API-Schlüssel erforderlich",
			"error.invalid_api_key":        "Ungültiger API-Schlüssel",
			"error.not_found":              "Nicht gefunden",
			"error.rate_limit_exceeded":    "Zu viele Anfragen, bitte später erneut versuchen",
			"error.timeout":                "Zeitüberschreitung der Anfrage",
			"error.service_unavailable":    "Rezeptspeicher ist vorübergehend nicht erreichbar",
			"error.recipe.not_found":       "Rezept nicht gefunden",
			"error.recipe.incomplete":      "Rezept unvollständig",
			"error.recipe.invalid_id":      "Die Rezept-ID muss eine positive Ganzzahl sein",
			"error.recipe.no_update_data":  "Keine Änderungen angegeben",
			"error.shopping.no_recipes":    "Keine Rezepte angegeben",
			"error.shopping.lookup_failed": "Rezepte konnten nicht geladen werden",

			"error.recipe.history_unavailable": "Der Rezeptverlauf wird nicht aufgezeichnet",

			"success.welcome":        "Willkommen beim Rezeptdienst",
			"success.recipe.deleted": "Rezept gelöscht",
		},
		"nl": {
			"error.invalid_request":        "Ongeldig verzoek",
			"error.invalid_request_body":   "Ongeldige aanvraag body",
			"error.internal_error":         "Er is een onverwachte fout opgetreden",
			"error.api_key_required":       "API-sleutel is vereist",
			"error.invalid_api_key":        "Ongeldige API-sleutel",
			"error.not_found":              "Niet gevonden",
			"error.rate_limit_exceeded":    "Te veel verzoeken, probeer het later opnieuw",
			"error.timeout":                "Time-out van het verzoek",
			"error.service_unavailable":    "Receptenopslag is tijdelijk niet beschikbaar",
			"error.recipe.not_found":       "Recept niet gevonden",
			"error.recipe.incomplete":      "Recept onvolledig",
			"error.recipe.invalid_id":      "Recept-id moet een positief geheel getal zijn",
			"error.recipe.no_update_data":  "Geen wijzigingen opgegeven",
			"error.shopping.no_recipes":    "Geen recepten opgegeven",
			"error.shopping.lookup_failed": "Recepten konden niet worden geladen",

			"error.recipe.history_unavailable": "Receptgeschiedenis wordt niet bijgehouden",

			"success.welcome":        "Welkom bij de receptendienst",
			"success.recipe.deleted": "Recept verwijderd",
		},
	}
}
