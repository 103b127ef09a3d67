// Package i18n localizes error codes and notification texts with go-i18n.
package i18n

import (
	"embed"
	"errors"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"fmpa/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// ErrorKey is the message id of a domain error code.
func ErrorKey(code string) string {
	return "error." + code
}

// Translator renders messages from the embedded active.<lang>.toml files.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator loads every embedded locale. An unparsable defaultLocale falls back to French.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.French
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("⚠️ i18n: impossible de charger %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// Languages lists the locales with a loaded message file.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// T renders key for locale, which may be a raw Accept-Language header.
// Missing translations fall back to the default locale, then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	var languages []string
	if locale != "" {
		if tags, _, err := language.ParseAcceptLanguage(locale); err == nil {
			for _, tag := range tags {
				languages = append(languages, tag.String())
			}
		}
	}
	languages = append(languages, t.defaultLanguage.String())

	msg, err := i18n.NewLocalizer(t.bundle, languages...).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			log.Printf("⚠️ i18n: %s (%v): %v", key, languages, err)
		}
		return key
	}
	return msg
}
