package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sheandsoul/shesoul/internal/db"
)

// captureSender records issued codes so tests can complete the verification
// flow without a mailbox.
type captureSender struct {
	codes map[string]string
}

func newCaptureSender() *captureSender {
	return &captureSender{codes: map[string]string{}}
}

func (sender *captureSender) SendOTP(recipient string, code string) error {
	sender.codes[recipient] = code
	return nil
}

type stubResponder struct {
	reply       string
	err         error
	lastContext string
	lastMessage string
}

func (responder *stubResponder) Respond(_ context.Context, cycleContext string, userMessage string) (string, error) {
	responder.lastContext = cycleContext
	responder.lastMessage = userMessage
	if responder.err != nil {
		return "", responder.err
	}
	return responder.reply, nil
}

type testApp struct {
	app       *fiber.App
	sender    *captureSender
	responder *stubResponder
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "shesoul-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	sender := newCaptureSender()
	responder := &stubResponder{reply: "stub reply"}
	handler := NewHandler(database, "test-secret-key", sender, responder)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testApp{app: app, sender: sender, responder: responder}
}

func (env *testApp) request(t *testing.T, method string, path string, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode %s %s payload: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}

	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s decode body %q: %v", method, path, raw, err)
		}
	}
	return response.StatusCode, decoded
}

// signupAndLogin registers an account and returns a bearer token for it.
func (env *testApp) signupAndLogin(t *testing.T, emailAddress string) string {
	t.Helper()

	credentials := map[string]string{"email": emailAddress, "password": "correct horse battery staple"}
	if status, body := env.request(t, http.MethodPost, "/api/auth/signup", "", credentials); status != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d (%v)", emailAddress, status, body)
	}

	status, body := env.request(t, http.MethodPost, "/api/auth/login", "", credentials)
	if status != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%v)", emailAddress, status, body)
	}
	token, ok := body["access_token"].(string)
	if !ok || token == "" {
		t.Fatalf("login %s: missing access_token in %v", emailAddress, body)
	}
	return token
}

func (env *testApp) createProfile(t *testing.T, token string, payload map[string]any) map[string]any {
	t.Helper()

	status, body := env.request(t, http.MethodPost, "/api/profile", token, payload)
	if status != http.StatusCreated {
		t.Fatalf("create profile: expected 201, got %d (%v)", status, body)
	}
	return body
}

var errStubResponder = errors.New("upstream unavailable")
