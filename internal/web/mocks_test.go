package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/middleware"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/post"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/session"

	"github.com/gin-gonic/gin"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockUserService struct {
	registerFunc     func(ctx context.Context, name, email, username, password string) (string, error)
	authenticateFunc func(ctx context.Context, username, password string) error
}

func (m *mockUserService) Register(ctx context.Context, name, email, username, password string) (string, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, name, email, username, password)
	}
	return "", errors.New("not implemented")
}

func (m *mockUserService) Authenticate(ctx context.Context, username, password string) error {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, username, password)
	}
	return errors.New("not implemented")
}

type mockPostService struct {
	createFunc        func(ctx context.Context, title, author, content string) (int64, error)
	findByIDFunc      func(ctx context.Context, id int64) (*post.Post, error)
	findOwnedFunc     func(ctx context.Context, id int64, author string) (*post.Post, error)
	findAllFunc       func(ctx context.Context) ([]post.Post, error)
	findByAuthorFunc  func(ctx context.Context, author string) ([]post.Post, error)
	searchByTitleFunc func(ctx context.Context, keyword string) ([]post.Post, error)
	updateOwnedFunc   func(ctx context.Context, id int64, author, title, content string) (bool, error)
	deleteOwnedFunc   func(ctx context.Context, id int64, author string) (bool, error)
}

func (m *mockPostService) Create(ctx context.Context, title, author, content string) (int64, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, title, author, content)
	}
	return 0, errors.New("not implemented")
}

func (m *mockPostService) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) FindOwned(ctx context.Context, id int64, author string) (*post.Post, error) {
	if m.findOwnedFunc != nil {
		return m.findOwnedFunc(ctx, id, author)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) FindAll(ctx context.Context) ([]post.Post, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) FindByAuthor(ctx context.Context, author string) ([]post.Post, error) {
	if m.findByAuthorFunc != nil {
		return m.findByAuthorFunc(ctx, author)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) SearchByTitle(ctx context.Context, keyword string) ([]post.Post, error) {
	if m.searchByTitleFunc != nil {
		return m.searchByTitleFunc(ctx, keyword)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) UpdateOwned(ctx context.Context, id int64, author, title, content string) (bool, error) {
	if m.updateOwnedFunc != nil {
		return m.updateOwnedFunc(ctx, id, author, title, content)
	}
	return false, errors.New("not implemented")
}

func (m *mockPostService) DeleteOwned(ctx context.Context, id int64, author string) (bool, error) {
	if m.deleteOwnedFunc != nil {
		return m.deleteOwnedFunc(ctx, id, author)
	}
	return false, errors.New("not implemented")
}

type mockSessionStore struct {
	createFunc func(ctx context.Context, s session.Session) error
	getFunc    func(ctx context.Context, sessionID string) (*session.Session, error)
	deleteFunc func(ctx context.Context, sessionID string) error
}

func (m *mockSessionStore) Create(ctx context.Context, s session.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, sessionID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, sessionID)
	}
	return nil
}

// loggedInStore recognizes one fixed session id for the given user.
func loggedInStore(username string) *mockSessionStore {
	return &mockSessionStore{
		getFunc: func(ctx context.Context, sessionID string) (*session.Session, error) {
			if sessionID != "test-session" {
				return nil, nil
			}
			return &session.Session{
				SessionID: sessionID,
				Username:  username,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
}

// =============================================================================
// Router helpers
// =============================================================================

func newTestRouter(users UserService, posts PostService, store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(users, posts, store, 24*time.Hour)

	r := gin.New()
	r.LoadHTMLGlob("../../ui/html/*.html")
	h.RegisterRoutes(r, middleware.NewAuth(store))
	return r
}

func getRequest(path string, loggedIn bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if loggedIn {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "test-session"})
	}
	return req
}

func formRequest(path string, form url.Values, loggedIn bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if loggedIn {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "test-session"})
	}
	return req
}
