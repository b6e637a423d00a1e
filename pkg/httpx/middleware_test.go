package httpx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillforge/backend/pkg/httpx"
	"github.com/skillforge/backend/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	var order []string

	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	chained := httpx.Chain(handler, mw("first"), mw("second"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	chained.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestRequireAuth(t *testing.T) {
	signer := jwtx.NewHS256([]byte("test-secret"), "skillforge")

	protected := func(lookup httpx.UserLookup) http.Handler {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := httpx.UserID(r.Context())
			require.True(t, ok)
			httpx.WriteData(w, http.StatusOK, map[string]string{"id": id})
		})
		return httpx.RequireAuth(signer, lookup)(inner)
	}

	allow := func(ctx context.Context, id string) (bool, error) { return true, nil }
	deny := func(ctx context.Context, id string) (bool, error) { return false, nil }

	t.Run("valid token passes through", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("user-1", "skillforge", time.Hour, time.Now())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected(allow).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp httpx.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "success", resp.Status)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		protected(allow).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Not authorized to access this route")
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		protected(allow).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted user rejected", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("user-gone", "skillforge", time.Hour, time.Now())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected(deny).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid token. User not found.")
	})
}

func TestCORS(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allowed origin echoed", func(t *testing.T) {
		wrapped := httpx.CORS([]string{"https://app.example.com"})(handler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)
		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no header", func(t *testing.T) {
		wrapped := httpx.CORS([]string{"https://app.example.com"})(handler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		wrapped := httpx.CORS([]string{"*"})(handler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answered directly", func(t *testing.T) {
		wrapped := httpx.CORS([]string{"*"})(handler)

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})
}
