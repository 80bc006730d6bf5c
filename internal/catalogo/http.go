package catalogo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	internalhttp "github.com/techsolutions/treinamentos/internal/http/response"
	"github.com/techsolutions/treinamentos/internal/util"
)

// Handler expõe os endpoints do catálogo.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/cursos", h.createCurso)
	r.Get("/cursos", h.listCursos)
	r.Get("/cursos/{idCurso}", h.getCurso)
	r.Put("/cursos/{idCurso}", h.updateCurso)
	r.Delete("/cursos/{idCurso}", h.deleteCurso)
	r.Get("/cursos/{idCurso}/trilhas", h.listTrilhasDoCurso)

	r.Post("/curso_trilha", h.vincularCursoTrilha)

	r.Post("/trilhas", h.createTrilha)
	r.Get("/trilhas", h.listTrilhas)
	r.Delete("/trilhas/{idTrilha}", h.deleteTrilha)

	r.Post("/tags", h.createTag)
	r.Get("/tags", h.listTags)
}

func (h *Handler) createCurso(w http.ResponseWriter, r *http.Request) {
	var in CreateCursoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	curso, err := h.service.CreateCurso(r.Context(), in)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, curso)
}

func (h *Handler) listCursos(w http.ResponseWriter, r *http.Request) {
	var tipo *TipoTreinamento
	if raw := r.URL.Query().Get("tipo"); raw != "" {
		t := TipoTreinamento(raw)
		tipo = &t
	}

	cursos, err := h.service.ListCursos(r.Context(), tipo)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, cursos)
}

func (h *Handler) getCurso(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idCurso")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	curso, err := h.service.GetCurso(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Curso não encontrado", nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar curso", nil)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, curso)
}

func (h *Handler) updateCurso(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idCurso")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var in UpdateCursoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	curso, err := h.service.UpdateCurso(r.Context(), id, in)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, curso)
}

func (h *Handler) deleteCurso(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idCurso")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.service.DeleteCurso(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Curso não encontrado", nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover curso", nil)
		return
	}

	internalhttp.WriteMessage(w, http.StatusOK, "Curso deletado com sucesso")
}

func (h *Handler) listTrilhasDoCurso(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idCurso")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	trilhas, err := h.service.ListTrilhasDoCurso(r.Context(), id)
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar trilhas", nil)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, trilhas)
}

func (h *Handler) vincularCursoTrilha(w http.ResponseWriter, r *http.Request) {
	var in VincularCursoTrilhaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	vinculo, err := h.service.VincularCursoTrilha(r.Context(), in)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, vinculo)
}

func (h *Handler) createTrilha(w http.ResponseWriter, r *http.Request) {
	var in CreateTrilhaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	trilha, err := h.service.CreateTrilha(r.Context(), in)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, trilha)
}

func (h *Handler) listTrilhas(w http.ResponseWriter, r *http.Request) {
	var obrigatoria *bool
	if raw := r.URL.Query().Get("obrigatoria"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "obrigatoria inválida", nil)
			return
		}
		obrigatoria = &parsed
	}

	trilhas, err := h.service.ListTrilhas(r.Context(), obrigatoria)
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar trilhas", nil)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, trilhas)
}

func (h *Handler) deleteTrilha(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idTrilha")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.service.DeleteTrilha(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Trilha não encontrada", nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover trilha", nil)
		return
	}

	internalhttp.WriteMessage(w, http.StatusOK, "Trilha deletada com sucesso")
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	var in CreateTagInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	tag, err := h.service.CreateTag(r.Context(), in)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, tag)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar tags", nil)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, tags)
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case util.IsValidation(err):
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
	case errors.Is(err, ErrConflito):
		internalhttp.WriteError(w, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Curso não encontrado", nil)
	default:
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "erro interno", nil)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
