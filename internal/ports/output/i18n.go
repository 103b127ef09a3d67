package output

// T exposes a minimal i18n contract for user-facing messages, such as the
// localized text of a domain error code.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	// Unknown keys render as the key itself.
	T(locale, key string, data map[string]any) string
}
