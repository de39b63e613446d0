package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetThenTake(t *testing.T) {
	// First response queues the notice.
	w1 := httptest.NewRecorder()
	Set(w1, Danger, "To view this page please login!")

	cookies := w1.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Set wrote %d cookies, want 1", len(cookies))
	}
	if !cookies[0].HttpOnly {
		t.Error("flash cookie must be HttpOnly")
	}

	// Next request carries the cookie and consumes it.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()

	msg := Take(w2, r)
	if msg == nil {
		t.Fatal("Take returned nil, want queued message")
	}
	if msg.Severity != Danger {
		t.Errorf("Severity = %q, want %q", msg.Severity, Danger)
	}
	if msg.Text != "To view this page please login!" {
		t.Errorf("Text = %q", msg.Text)
	}

	// Take must clear the cookie so the notice shows only once.
	cleared := w2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Error("Take did not clear the flash cookie")
	}
}

func TestTakeWithoutNotice(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	if msg := Take(w, r); msg != nil {
		t.Errorf("Take = %+v, want nil when no notice queued", msg)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("Take wrote a cookie with no notice present")
	}
}

func TestTakeGarbageCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "blog_flash", Value: "not-base64!!"})
	w := httptest.NewRecorder()

	if msg := Take(w, r); msg != nil {
		t.Errorf("Take = %+v, want nil for undecodable cookie", msg)
	}
}
