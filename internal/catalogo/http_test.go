package catalogo

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func novoRouterDeTeste() *chi.Mux {
	svc := NewService(&stubCatalogRepo{}, &stubSeq{})
	handler := NewHandler(svc)

	r := chi.NewRouter()
	Mount(r, handler)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCursoEndpoints(t *testing.T) {
	r := novoRouterDeTeste()

	rec := doJSON(t, r, http.MethodPost, "/cursos", novoCursoInput("Segurança Rural", 8, ModalidadePresencial))
	require.Equal(t, http.StatusCreated, rec.Code)

	var criado struct {
		Data Curso `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))
	require.Equal(t, int64(1), criado.Data.IDCurso)

	// Quase-duplicado entre modalidades responde 409.
	rec = doJSON(t, r, http.MethodPost, "/cursos", novoCursoInput("segurança rural", 9, ModalidadeOnlineSincrono))
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/cursos/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/cursos/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/cursos/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/cursos/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCursoPayloadInvalido(t *testing.T) {
	r := novoRouterDeTeste()

	req := httptest.NewRequest(http.MethodPost, "/cursos", bytes.NewBufferString("{titulo"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
