package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "42", claims.Subject)
}

func TestGerarTokenSemSegredo(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := GerarToken(1, false)
	assert.Error(t, err)
}

func TestParseAndValidateSegredoErrado(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-original")
	token, err := GerarToken(1, false)
	require.NoError(t, err)

	t.Setenv("AUTH_JWT_SECRET", "outro-segredo")
	_, err = ParseAndValidate(token)
	assert.Error(t, err)
}

func TestParseAndValidateLixo(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	_, err := ParseAndValidate("nao.e.um.token")
	assert.Error(t, err)
}

func TestMiddlewareAutenticacao(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	protegido := MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := r.Context().Value(CtxUserID).(uint)
		require.True(t, ok)
		assert.Equal(t, uint(7), id)
		w.WriteHeader(http.StatusNoContent)
	}))

	token, err := GerarToken(7, false)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/parceiros", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protegido.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMiddlewareAutenticacaoSemToken(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	protegido := MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("não deveria chegar no handler")
	}))

	r := httptest.NewRequest("GET", "/parceiros", nil)
	w := httptest.NewRecorder()
	protegido.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	cadeia := MiddlewareAutenticacao(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	comum, err := GerarToken(1, false)
	require.NoError(t, err)
	admin, err := GerarToken(2, true)
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/usuarios", nil)
	r.Header.Set("Authorization", "Bearer "+comum)
	w := httptest.NewRecorder()
	cadeia.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = httptest.NewRequest("POST", "/usuarios", nil)
	r.Header.Set("Authorization", "Bearer "+admin)
	w = httptest.NewRecorder()
	cadeia.ServeHTTP(w, r)
	assert.Equal(t, http.StatusCreated, w.Code)
}
