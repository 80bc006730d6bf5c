package inscricao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	internalhttp "github.com/techsolutions/treinamentos/internal/http/response"
	"github.com/techsolutions/treinamentos/internal/util"
)

// Handler expõe os endpoints de inscrições, progressos e evidências.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/inscricoes", h.createInscricao)
	r.Get("/inscricoes", h.listInscricoes)
	r.Get("/inscricoes/{idInscricao}", h.getInscricao)
	r.Put("/inscricoes/{idInscricao}", h.updateInscricao)

	r.Put("/progressos/{idProgresso}", h.updateProgresso)

	r.Post("/evidencias", h.createEvidencia)
	r.Get("/evidencias", h.listEvidencias)
}

type inscricaoCriada struct {
	Inscricao Inscricao `json:"inscricao"`
	Progresso Progresso `json:"progresso"`
}

func (h *Handler) createInscricao(w http.ResponseWriter, r *http.Request) {
	var in CreateInscricaoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	inscricao, progresso, err := h.service.CreateInscricao(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrCursoNaoEncontrado) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Curso não encontrado", nil)
			return
		}
		writeEnrollmentError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, inscricaoCriada{Inscricao: inscricao, Progresso: progresso})
}

func (h *Handler) listInscricoes(w http.ResponseWriter, r *http.Request) {
	filtro, err := parseListFilter(r)
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	inscricoes, err := h.service.ListInscricoes(r.Context(), filtro)
	if err != nil {
		writeEnrollmentError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, inscricoes)
}

func (h *Handler) getInscricao(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idInscricao")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	inscricao, err := h.service.GetInscricao(r.Context(), id)
	if err != nil {
		writeEnrollmentError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, inscricao)
}

func (h *Handler) updateInscricao(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idInscricao")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var in UpdateInscricaoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	inscricao, err := h.service.UpdateInscricao(r.Context(), id, in)
	if err != nil {
		writeEnrollmentError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, inscricao)
}

func (h *Handler) updateProgresso(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idProgresso")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var in UpdateProgressoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	progresso, err := h.service.UpdateProgresso(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Progresso não encontrado", nil)
			return
		}
		writeEnrollmentError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, progresso)
}

func (h *Handler) createEvidencia(w http.ResponseWriter, r *http.Request) {
	var in CreateEvidenciaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	evidencia, err := h.service.CreateEvidencia(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Inscrição não encontrada", nil)
			return
		}
		writeEnrollmentError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, evidencia)
}

func (h *Handler) listEvidencias(w http.ResponseWriter, r *http.Request) {
	var idInscricao *int64
	if raw := r.URL.Query().Get("id_inscricao"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id_inscricao inválido", nil)
			return
		}
		idInscricao = &parsed
	}

	evidencias, err := h.service.ListEvidencias(r.Context(), idInscricao)
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar evidências", nil)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, evidencias)
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	var filtro ListFilter
	q := r.URL.Query()

	if raw := q.Get("id_colaborador"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ListFilter{}, errors.New("id_colaborador inválido")
		}
		filtro.IDColaborador = &parsed
	}
	if raw := q.Get("id_curso"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ListFilter{}, errors.New("id_curso inválido")
		}
		filtro.IDCurso = &parsed
	}
	if raw := q.Get("status"); raw != "" {
		status := Status(raw)
		filtro.Status = &status
	}
	return filtro, nil
}

func writeEnrollmentError(w http.ResponseWriter, err error) {
	switch {
	case util.IsValidation(err):
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Inscrição não encontrada", nil)
	default:
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "erro interno", nil)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
