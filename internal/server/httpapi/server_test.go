package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockboxapp/lockbox/internal/logging"
	"github.com/lockboxapp/lockbox/internal/server/config"
	"github.com/lockboxapp/lockbox/internal/server/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		EndpointAddr:          ":0",
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
	}
	return NewServer(cfg, logging.NewJSONLogger(), storage.NewInMemoryRepositoryManager())
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func register(t *testing.T, s *Server, email, password string) (user map[string]any, token string) {
	t.Helper()
	w, body := doJSON(t, s, http.MethodPost, "/api/users", "", map[string]any{
		"email": email, "password": password, "name": "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user = body["user"].(map[string]any)
	token = body["token"].(string)
	require.NotEmpty(t, token)
	return user, token
}

func TestAuthenticate_RegisterThenLogin(t *testing.T) {
	s := newTestServer(t)

	w, body := doJSON(t, s, http.MethodPost, "/api/users", "", map[string]any{
		"email": "alice@example.com", "password": "s3cret", "name": "Alice", "dob": "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User created", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.NotEmpty(t, user["id"])
	assert.NotEmpty(t, body["token"])

	// the same call with an existing email is a login
	w, body = doJSON(t, s, http.MethodPost, "/api/users", "", map[string]any{
		"email": "alice@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User logged in", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	s := newTestServer(t)
	register(t, s, "alice@example.com", "s3cret")

	w, body := doJSON(t, s, http.MethodPost, "/api/users", "", map[string]any{
		"email": "alice@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid password", body["error"])
	assert.NotContains(t, body, "user")
	assert.NotContains(t, body, "token")
}

func TestAuthenticate_MissingFields(t *testing.T) {
	s := newTestServer(t)

	for _, payload := range []map[string]any{
		{},
		{"email": "alice@example.com"},
		{"password": "s3cret"},
	} {
		w, body := doJSON(t, s, http.MethodPost, "/api/users", "", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email and password required", body["error"])
	}
}

func TestResponses_NeverLeakPasswordHash(t *testing.T) {
	s := newTestServer(t)
	user, token := register(t, s, "alice@example.com", "s3cret")
	id := user["id"].(string)

	paths := []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/users?id=" + id, nil},
		{http.MethodGet, "/api/users", nil},
		{http.MethodPut, "/api/users", map[string]any{"id": id, "name": "Renamed"}},
	}
	for _, p := range paths {
		w, _ := doJSON(t, s, p.method, p.path, token, p.body)
		require.Equal(t, http.StatusOK, w.Code, p.path)
		assert.NotContains(t, w.Body.String(), "s3cret")
		assert.NotContains(t, w.Body.String(), "password_hash")
		assert.NotContains(t, w.Body.String(), "PasswordHash")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestServer(t)

	w, body := doJSON(t, s, http.MethodGet, "/api/users?id=missing", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", body["error"])
}

func TestUpdateUser_RequiresID(t *testing.T) {
	s := newTestServer(t)

	w, body := doJSON(t, s, http.MethodPut, "/api/users", "", map[string]any{"name": "No ID"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ID is required", body["error"])
}

func TestDeleteUser(t *testing.T) {
	s := newTestServer(t)
	user, _ := register(t, s, "alice@example.com", "s3cret")
	id := user["id"].(string)

	w, body := doJSON(t, s, http.MethodDelete, "/api/users?id="+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted", body["message"])

	w, _ = doJSON(t, s, http.MethodGet, "/api/users?id="+id, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPasswords_RequireBearer(t *testing.T) {
	s := newTestServer(t)

	w, _ := doJSON(t, s, http.MethodGet, "/api/passwords", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, s, http.MethodGet, "/api/passwords", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPasswords_CRUDFlow(t *testing.T) {
	s := newTestServer(t)
	_, token := register(t, s, "alice@example.com", "s3cret")

	// empty vault is an empty array, not null
	w, body := doJSON(t, s, http.MethodGet, "/api/passwords", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list, ok := body["passwords"].([]any)
	require.True(t, ok, "passwords must be an array: %s", w.Body.String())
	assert.Empty(t, list)

	// create; the server assigns the id
	w, body = doJSON(t, s, http.MethodPost, "/api/passwords", token, map[string]any{
		"title": "Bank", "user": "alice", "password": "hunter2", "type": "login", "icon": "bank",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := body["password"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Bank", created["title"])
	assert.Equal(t, "alice", created["user"])

	// update
	w, body = doJSON(t, s, http.MethodPut, "/api/passwords/"+id, token, map[string]any{
		"title": "Bank v2", "user": "alice", "password": "hunter3",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := body["password"].(map[string]any)
	assert.Equal(t, "Bank v2", updated["title"])
	assert.Equal(t, id, updated["id"])

	// delete
	w, body = doJSON(t, s, http.MethodDelete, "/api/passwords/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password deleted", body["message"])

	w, _ = doJSON(t, s, http.MethodDelete, "/api/passwords/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPasswords_ValidationMessage(t *testing.T) {
	s := newTestServer(t)
	_, token := register(t, s, "alice@example.com", "s3cret")

	w, body := doJSON(t, s, http.MethodPost, "/api/passwords", token, map[string]any{
		"title": "Bank",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title, user and password required", body["error"])
}

func TestPasswords_ScopedPerUser(t *testing.T) {
	s := newTestServer(t)
	_, aliceToken := register(t, s, "alice@example.com", "s3cret")
	_, bobToken := register(t, s, "bob@example.com", "hunter2")

	w, body := doJSON(t, s, http.MethodPost, "/api/passwords", aliceToken, map[string]any{
		"title": "Bank", "user": "alice", "password": "hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["password"].(map[string]any)["id"].(string)

	// bob does not see alice's entry
	w, body = doJSON(t, s, http.MethodGet, "/api/passwords", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["passwords"])

	// and cannot touch it either
	w, _ = doJSON(t, s, http.MethodPut, "/api/passwords/"+id, bobToken, map[string]any{"title": "stolen"})
	require.Equal(t, http.StatusNotFound, w.Code)
	w, _ = doJSON(t, s, http.MethodDelete, "/api/passwords/"+id, bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// alice still has it
	w, body = doJSON(t, s, http.MethodGet, "/api/passwords", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["passwords"], 1)
}

func TestPasswords_ListNewestFirst(t *testing.T) {
	s := newTestServer(t)
	_, token := register(t, s, "alice@example.com", "s3cret")

	for _, title := range []string{"first", "second", "third"} {
		w, _ := doJSON(t, s, http.MethodPost, "/api/passwords", token, map[string]any{
			"title": title, "user": "alice", "password": "pw",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		time.Sleep(2 * time.Millisecond)
	}

	w, body := doJSON(t, s, http.MethodGet, "/api/passwords", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := body["passwords"].([]any)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].(map[string]any)["title"])
	assert.Equal(t, "first", list[2].(map[string]any)["title"])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w, body := doJSON(t, s, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}
