package repository

import "context"

// Preference keys. Values are stored as opaque strings.
const (
	// KeyTheme holds "dark" or "light".
	KeyTheme = "theme"
	// KeyChecklist holds a JSON object mapping "<monthId>-<index>" to a bool.
	KeyChecklist = "mobile_bar_marketing_actions"
)

// PreferenceStore is a small string key/value store. A missing key is
// reported with ok == false and a nil error.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
