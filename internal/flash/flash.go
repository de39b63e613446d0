// Package flash implements one-shot user notices carried in a cookie.
// A notice is written on one response, rendered on the next page view
// and cleared in the same request.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "blog_flash"

type Severity string

const (
	Success Severity = "success"
	Danger  Severity = "danger"
	Warning Severity = "warning"
)

// Message is a single notice with a severity category used by the
// templates to pick an alert style.
type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// Set queues a notice for the next rendered page.
func Set(w http.ResponseWriter, severity Severity, text string) {
	data, err := json.Marshal(Message{Severity: severity, Text: text})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Take returns the pending notice, if any, and clears it so it is
// shown exactly once.
func Take(w http.ResponseWriter, r *http.Request) *Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil
	}

	return &msg
}
