package session

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"prenderia/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testToken(t *testing.T, id uint, identificacion, username, role string) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(id, identificacion, username, role, "client-test", 15)
	require.NoError(t, err)
	return token
}

type fakeAuth struct {
	token string
	err   error
	calls int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (string, error) {
	f.calls++
	return f.token, f.err
}

type serverErr struct{ msg string }

func (e serverErr) Error() string         { return "server: " + e.msg }
func (e serverErr) ServerMessage() string { return e.msg }

func TestInitialize_DecodesPersistedToken(t *testing.T) {
	token := testToken(t, 42, "12345", "Ana", "ADMIN")
	m := NewManager(NewMemoryStore(token), zap.NewNop())
	assert.False(t, m.Ready())

	m.Initialize(context.Background())

	assert.True(t, m.Ready())
	assert.True(t, m.Authenticated())
	assert.Equal(t, token, m.Token())

	id := m.Identity()
	require.NotNil(t, id)
	assert.Equal(t, uint(42), id.SubjectID)
	assert.Equal(t, "12345", id.ExternalID)
	require.NotNil(t, id.DisplayName)
	assert.Equal(t, "Ana", *id.DisplayName)
	require.NotNil(t, id.Role)
	assert.Equal(t, RoleAdmin, *id.Role)
	assert.True(t, id.IsAdmin())
}

func TestInitialize_MalformedTokenDegradesIdentity(t *testing.T) {
	for _, token := range []string{"garbage", "a.!!!.c", "a." + base64.RawURLEncoding.EncodeToString([]byte("{nope")) + ".c"} {
		m := NewManager(NewMemoryStore(token), zap.NewNop())

		assert.NotPanics(t, func() { m.Initialize(context.Background()) })

		assert.True(t, m.Ready(), token)
		assert.Equal(t, token, m.Token())
		id := m.Identity()
		require.NotNil(t, id)
		assert.Nil(t, id.DisplayName)
		assert.Nil(t, id.Role)
	}
}

func TestInitialize_ClaimTypeMismatchKeepsIdentity(t *testing.T) {
	for _, payload := range []string{
		`{"username":"Ana","role":"ADMIN","identificacion":"12345","id_usuario":"7"}`,
		`{"username":"Ana","role":"ADMIN","identificacion":"12345","id_usuario":7,"aud":5}`,
		`{"username":"Ana","role":"ADMIN","identificacion":12345,"id_usuario":7}`,
	} {
		token := "h." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".s"
		m := NewManager(NewMemoryStore(token), zap.NewNop())
		m.Initialize(context.Background())

		id := m.Identity()
		require.NotNil(t, id, payload)
		require.NotNil(t, id.DisplayName, payload)
		assert.Equal(t, "Ana", *id.DisplayName)
		assert.True(t, id.IsAdmin(), payload)
		assert.Equal(t, uint(7), id.SubjectID, payload)
		assert.Equal(t, "12345", id.ExternalID, payload)
	}
}

func TestInitialize_NoToken(t *testing.T) {
	m := NewManager(NewMemoryStore(""), zap.NewNop())
	m.Initialize(context.Background())

	assert.True(t, m.Ready())
	assert.False(t, m.Authenticated())
	assert.Nil(t, m.Identity())
}

type brokenStore struct{ MemoryStore }

func (s *brokenStore) Load() (string, error) { return "", errors.New("disk on fire") }

func TestInitialize_StoreErrorMeansNoSession(t *testing.T) {
	m := NewManager(&brokenStore{}, zap.NewNop())
	m.Initialize(context.Background())

	assert.True(t, m.Ready())
	assert.False(t, m.Authenticated())
}

func TestLogin_Success(t *testing.T) {
	token := testToken(t, 7, "12345", "Luis", "CLIENTE")
	store := NewMemoryStore("")
	auth := &fakeAuth{token: token}
	m := NewManager(store, zap.NewNop())
	m.SetAuthenticator(auth)

	res := m.Login(context.Background(), "12345", "validpass")

	assert.True(t, res.OK)
	assert.Empty(t, res.Error)
	assert.Equal(t, token, m.Token())
	persisted, _ := store.Load()
	assert.Equal(t, token, persisted)

	id := m.Identity()
	require.NotNil(t, id)
	assert.Equal(t, uint(7), id.SubjectID)
	assert.Equal(t, "12345", id.ExternalID)
	assert.Equal(t, "Luis", *id.DisplayName)
	assert.Equal(t, RoleCliente, *id.Role)
	assert.False(t, id.IsAdmin())
}

func TestLogin_NonNumericRejectedBeforeNetwork(t *testing.T) {
	auth := &fakeAuth{token: "x"}
	m := NewManager(NewMemoryStore(""), zap.NewNop())
	m.SetAuthenticator(auth)

	res := m.Login(context.Background(), "abc", "x")

	assert.False(t, res.OK)
	assert.Equal(t, "La identificación debe contener solo números.", res.Error)
	assert.Zero(t, auth.calls)
	assert.False(t, m.Authenticated())
}

func TestLogin_FailureKeepsPriorSession(t *testing.T) {
	prior := testToken(t, 1, "1", "Admin", "ADMIN")
	store := NewMemoryStore(prior)
	m := NewManager(store, zap.NewNop())
	m.Initialize(context.Background())

	m.SetAuthenticator(&fakeAuth{err: serverErr{msg: "Credenciales inválidas"}})
	res := m.Login(context.Background(), "99", "bad")
	assert.False(t, res.OK)
	assert.Equal(t, "Credenciales inválidas", res.Error)

	m.SetAuthenticator(&fakeAuth{err: errors.New("connection refused")})
	res = m.Login(context.Background(), "99", "bad")
	assert.Equal(t, DefaultLoginError, res.Error)

	m.SetAuthenticator(&fakeAuth{err: serverErr{}})
	res = m.Login(context.Background(), "99", "bad")
	assert.Equal(t, DefaultLoginError, res.Error)

	assert.Equal(t, prior, m.Token())
	persisted, _ := store.Load()
	assert.Equal(t, prior, persisted)
	assert.Equal(t, "Admin", *m.Identity().DisplayName)
}

func TestLogin_UndecodableTokenKeepsUsername(t *testing.T) {
	m := NewManager(NewMemoryStore(""), zap.NewNop())
	m.SetAuthenticator(&fakeAuth{token: "not-a-jwt"})

	res := m.Login(context.Background(), "12345", "validpass")

	require.True(t, res.OK)
	id := m.Identity()
	require.NotNil(t, id)
	require.NotNil(t, id.DisplayName)
	assert.Equal(t, "12345", *id.DisplayName)
	assert.Nil(t, id.Role)
}

func TestLogout_Idempotent(t *testing.T) {
	store := NewMemoryStore(testToken(t, 1, "1", "A", "ADMIN"))
	m := NewManager(store, zap.NewNop())
	m.Initialize(context.Background())

	m.Logout()
	tokenOnce, idOnce, readyOnce := m.Token(), m.Identity(), m.Ready()
	persistedOnce, _ := store.Load()

	m.Logout()
	persistedTwice, _ := store.Load()

	assert.Equal(t, tokenOnce, m.Token())
	assert.Equal(t, idOnce, m.Identity())
	assert.Equal(t, readyOnce, m.Ready())
	assert.Equal(t, persistedOnce, persistedTwice)
	assert.Empty(t, m.Token())
	assert.Nil(t, m.Identity())
	assert.Empty(t, persistedTwice)
}

func TestTeardown_KeepsPersistedToken(t *testing.T) {
	token := testToken(t, 1, "1", "A", "ADMIN")
	store := NewMemoryStore(token)
	m := NewManager(store, zap.NewNop())
	m.Initialize(context.Background())

	m.Teardown()

	assert.False(t, m.Ready())
	assert.False(t, m.Authenticated())
	persisted, _ := store.Load()
	assert.Equal(t, token, persisted)

	m.Initialize(context.Background())
	assert.Equal(t, token, m.Token())
}

func TestIsolatedManagers(t *testing.T) {
	a := NewManager(NewMemoryStore(testToken(t, 1, "1", "A", "ADMIN")), zap.NewNop())
	b := NewManager(NewMemoryStore(""), zap.NewNop())
	a.Initialize(context.Background())
	b.Initialize(context.Background())

	a.Logout()
	b.SetAuthenticator(&fakeAuth{token: testToken(t, 2, "2", "B", "CLIENTE")})
	require.True(t, b.Login(context.Background(), "2", "pw").OK)

	assert.False(t, a.Authenticated())
	assert.True(t, b.Authenticated())
}

func TestTransport_InjectsBearer(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	token := testToken(t, 1, "1", "A", "ADMIN")
	m := NewManager(NewMemoryStore(token), zap.NewNop())
	m.Initialize(context.Background())
	client := &http.Client{Transport: m.Transport(nil)}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/prestamos", nil)
	res, err := client.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, "Bearer "+token, got)
	assert.Empty(t, req.Header.Get("Authorization"), "caller's request must not be mutated")

	m.Logout()
	res, err = client.Get(srv.URL + "/prestamos")
	require.NoError(t, err)
	res.Body.Close()
	assert.Empty(t, got)
}

func TestTransport_401FromAnyEndpointLogsOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/me" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	for _, path := range []string{"/prestamos", "/intereses/prestamo/3", "/stats-resumen"} {
		store := NewMemoryStore(testToken(t, 1, "1", "A", "ADMIN"))
		m := NewManager(store, zap.NewNop())
		m.Initialize(context.Background())
		client := &http.Client{Transport: m.Transport(nil)}

		res, err := client.Get(srv.URL + "/me")
		require.NoError(t, err)
		res.Body.Close()
		require.True(t, m.Authenticated())

		res, err = client.Get(srv.URL + path)
		require.NoError(t, err)
		res.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.False(t, m.Authenticated(), path)
		assert.Nil(t, m.Identity(), path)
		persisted, _ := store.Load()
		assert.Empty(t, persisted, path)
	}
}

func TestTransport_AnonymousRequests(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewManager(NewMemoryStore(testToken(t, 1, "1", "A", "ADMIN")), zap.NewNop())
	m.Initialize(context.Background())
	client := &http.Client{Transport: m.Transport(nil)}

	req, _ := http.NewRequestWithContext(Anonymous(context.Background()), http.MethodPost, srv.URL+"/auth/login", nil)
	res, err := client.Do(req)
	require.NoError(t, err)
	res.Body.Close()

	assert.Empty(t, got)
	assert.True(t, m.Authenticated())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", TokenFileName)
	store, err := NewFileStore(path)
	require.NoError(t, err)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("abc.def.ghi"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Save("second"))
	token, _ = store.Load()
	assert.Equal(t, "second", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), TokenFileName)
	token := testToken(t, 9, "900", "Persistido", "CLIENTE")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	m := NewManager(store, zap.NewNop())
	m.SetAuthenticator(&fakeAuth{token: token})
	require.True(t, m.Login(context.Background(), "900", "pw").OK)

	restarted, err := NewFileStore(path)
	require.NoError(t, err)
	m2 := NewManager(restarted, zap.NewNop())
	m2.Initialize(context.Background())

	assert.Equal(t, token, m2.Token())
	assert.Equal(t, uint(9), m2.Identity().SubjectID)
}
