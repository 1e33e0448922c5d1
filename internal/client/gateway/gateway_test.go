package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lockboxapp/lockbox/internal/client/models"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestAuthenticate_Success(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/users", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.cc", body["email"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "User logged in",
			"user":    map[string]any{"id": "u1", "email": "a@b.cc", "role": "user"},
			"token":   "tok123",
		})
	})

	sess, err := c.Authenticate(context.Background(), models.Profile{Email: "a@b.cc", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "u1", sess.User.ID)
	require.Equal(t, "a@b.cc", sess.User.Email)
	require.Equal(t, "tok123", sess.Token)
	// token is installed for subsequent vault calls
	require.Equal(t, "tok123", c.bearer())
}

func TestAuthenticate_BlankInputNeverHitsNetwork(t *testing.T) {
	called := false
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	for _, p := range []models.Profile{
		{Email: "", Password: "pw"},
		{Email: "a@b.cc", Password: ""},
		{Email: "   ", Password: "pw"},
	} {
		_, err := c.Authenticate(context.Background(), p)
		require.Equal(t, KindValidation, KindOf(err))
		require.EqualError(t, err, MsgEmailPasswordRequired)
	}
	require.False(t, called)
}

func TestAuthenticate_Classification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{"wrong password", 401, `{"error":"Invalid password"}`, KindAuth, "Invalid password"},
		{"validation", 400, `{"error":"Email and password required"}`, KindValidation, "Email and password required"},
		{"persistence", 500, `{"error":"insert failed"}`, KindPersistence, "insert failed"},
		{"empty envelope falls back", 500, `{}`, KindPersistence, "Failed to login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Authenticate(context.Background(), models.Profile{Email: "a@b.cc", Password: "pw"})
			require.Equal(t, tt.wantKind, KindOf(err))
			require.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestAuthenticate_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := New(srv.URL, time.Second)

	_, err := c.Authenticate(context.Background(), models.Profile{Email: "a@b.cc", Password: "pw"})
	require.Equal(t, KindTransport, KindOf(err))
	require.EqualError(t, err, TransportMessage)
}

func TestFetchAll_MissingListDefaultsToEmpty(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	entries, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestFetchAll_CarriesBearerToken(t *testing.T) {
	var gotAuth string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"passwords": []models.CredentialEntry{{ID: "1", Title: "GitHub"}},
		})
	})
	c.SetToken("tok123")

	entries, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Bearer tok123", gotAuth)
}

func TestAdd_ServerAssignedID(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var e models.CredentialEntry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		e.ID = "server-id"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"password": e})
	})

	created, err := c.Add(context.Background(), models.NewCredentialEntry("GitHub", "dev", "pw", "", ""))
	require.NoError(t, err)
	require.Equal(t, "server-id", created.ID)
	require.Equal(t, "GitHub", created.Title)
}

func TestUpdate_EmptyIDFailsFast(t *testing.T) {
	called := false
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, err := c.Update(context.Background(), models.CredentialEntry{ID: "  "})
	require.Equal(t, KindValidation, KindOf(err))
	require.False(t, called)

	err = c.Delete(context.Background(), "")
	require.Equal(t, KindValidation, KindOf(err))
	require.False(t, called)
}

func TestUpdate_NotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Password not found"}`))
	})

	_, err := c.Update(context.Background(), models.CredentialEntry{ID: "nope", Title: "x"})
	require.Equal(t, KindNotFound, KindOf(err))
	require.EqualError(t, err, "Password not found")
}

func TestDelete_Success(t *testing.T) {
	var gotPath, gotMethod string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		_, _ = w.Write([]byte(`{"message":"Password deleted"}`))
	})

	require.NoError(t, c.Delete(context.Background(), "abc"))
	require.Equal(t, "/api/passwords/abc", gotPath)
	require.Equal(t, http.MethodDelete, gotMethod)
}
