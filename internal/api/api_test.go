package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamlineup/lineup/internal/api"
	"github.com/teamlineup/lineup/internal/api/response"
	"github.com/teamlineup/lineup/internal/factory"
	"github.com/teamlineup/lineup/internal/services/auth"
)

// testServer creates a test server with all dependencies
type testServer struct {
	t       *testing.T
	handler http.Handler
	auth    *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{
		UploadDir: t.TempDir(),
		Logger:    logger,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		AuthService:   app.AuthService,
		RosterService: app.RosterService,
		PhotosService: app.PhotosService,
	})

	return &testServer{
		t:       t,
		handler: router,
		auth:    app.AuthService,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// uploadPlayer posts a multipart add-player request with a photo attached
func (ts *testServer) uploadPlayer(name, number, filename, token string) *httptest.ResponseRecorder {
	ts.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(ts.t, mw.WriteField("name", name))
	require.NoError(ts.t, mw.WriteField("number", number))
	if filename != "" {
		part, err := mw.CreateFormFile("photo", filename)
		require.NoError(ts.t, err)
		_, err = io.WriteString(part, "fake image bytes")
		require.NoError(ts.t, err)
	}
	require.NoError(ts.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// login registers an account and logs in, returning the session token
func (ts *testServer) login(username, password string) string {
	ts.t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(ts.t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/users/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(ts.t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	require.NoError(ts.t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(ts.t, resp.SessionToken)
	return resp.SessionToken
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Register
	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{
		"username": "coach",
		"password": "s3cretpass",
	}, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var user response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "coach", user.Username)
	assert.NotZero(t, user.ID)

	// Login
	rr = ts.request(http.MethodPost, "/api/v1/users/login", map[string]string{
		"username": "coach",
		"password": "s3cretpass",
	}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var authResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &authResp))
	assert.Equal(t, "coach", authResp.Username)
	assert.NotEmpty(t, authResp.SessionToken)
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{"username": "coach"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")

	rr = ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{"password": "pw"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"username": "coach", "password": "s3cretpass"}
	rr := ts.request(http.MethodPost, "/api/v1/users/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/users/register", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "USERNAME_EXISTS")
}

func TestLoginInvalidCredentials(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{
		"username": "coach",
		"password": "s3cretpass",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/users/login", map[string]string{
		"username": "coach",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CREDENTIALS")

	// Unknown users get the same response shape
	rr = ts.request(http.MethodPost, "/api/v1/users/login", map[string]string{
		"username": "nobody",
		"password": "whatever",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CREDENTIALS")
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("coach", "s3cretpass")

	rr := ts.request(http.MethodGet, "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var user response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "coach", user.Username)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/players"},
		{http.MethodDelete, "/api/v1/players/1"},
		{http.MethodGet, "/api/v1/photos/some.png"},
	}

	for _, tc := range cases {
		rr := ts.request(tc.method, tc.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, rr.Body.String(), "UNAUTHORIZED")
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, "sess_bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRosterLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("coach", "s3cretpass")

	// Empty roster to start
	rr := ts.request(http.MethodGet, "/api/v1/players", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var list response.PlayerList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Players)

	// Add a player with a photo
	rr = ts.uploadPlayer("Jan Kowalski", "9", "jan.png", token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Jan Kowalski", created.Name)
	assert.Equal(t, "9", created.Number)
	assert.NotEmpty(t, created.PhotoKey)

	// The photo streams back
	rr = ts.request(http.MethodGet, "/api/v1/photos/"+created.PhotoKey, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "fake image bytes", rr.Body.String())
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))

	// Single fetch
	rr = ts.request(http.MethodGet, "/api/v1/players/1", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Delete
	rr = ts.request(http.MethodDelete, "/api/v1/players/1", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Row and photo are both gone
	rr = ts.request(http.MethodGet, "/api/v1/players", nil, token)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Players)

	rr = ts.request(http.MethodGet, "/api/v1/photos/"+created.PhotoKey, nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAddPlayerValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("coach", "s3cretpass")

	// Missing photo
	rr := ts.uploadPlayer("Jan", "9", "", token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "VALIDATION_FAILED")

	// Missing name
	rr = ts.uploadPlayer("", "9", "jan.png", token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "name")

	// Missing number
	rr = ts.uploadPlayer("Jan", "", "jan.png", token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "number")
}

func TestDeleteUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("coach", "s3cretpass")

	rr := ts.request(http.MethodDelete, "/api/v1/players/9999", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_NOT_FOUND")

	rr = ts.request(http.MethodDelete, "/api/v1/players/notanumber", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("coach", "s3cretpass")

	rr := ts.request(http.MethodPost, "/api/v1/users/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
