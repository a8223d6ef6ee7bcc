// Package botcheck holds the settings the page needs to render the
// reCAPTCHA v3 widget. Tokens are never verified server-side.
package botcheck

import "net/url"

const (
	// DevToken is the placeholder token issued while running in development.
	DevToken = "dev-token"

	DefaultAction = "submit"

	scriptBase = "https://www.google.com/recaptcha/api.js"
)

type Widget struct {
	SiteKey string
	Action  string
	Dev     bool
}

func New(siteKey, action string, dev bool) Widget {
	if action == "" {
		action = DefaultAction
	}
	return Widget{SiteKey: siteKey, Action: action, Dev: dev}
}

// Enabled reports whether the real widget should load. In development or
// without a site key the page simulates verification instead.
func (w Widget) Enabled() bool {
	return !w.Dev && w.SiteKey != ""
}

// ScriptURL is the loader URL for the site key, or "" when disabled.
func (w Widget) ScriptURL() string {
	if !w.Enabled() {
		return ""
	}
	q := url.Values{}
	q.Set("render", w.SiteKey)
	return scriptBase + "?" + q.Encode()
}

// Simulated reports whether the page should show the development banner
// and submit DevToken.
func (w Widget) Simulated() bool {
	return !w.Enabled()
}
