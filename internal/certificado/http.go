package certificado

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	internalhttp "github.com/techsolutions/treinamentos/internal/http/response"
	"github.com/techsolutions/treinamentos/internal/util"
)

// Handler expõe os endpoints de certificados.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/certificados", h.emitir)
	r.Get("/certificados", h.list)
}

func (h *Handler) emitir(w http.ResponseWriter, r *http.Request) {
	var in EmitirInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	certificado, err := h.service.Emitir(r.Context(), in)
	if err != nil {
		switch {
		case util.IsValidation(err):
			internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		case errors.Is(err, ErrInscricaoNaoEncontrada):
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Inscrição não encontrada", nil)
		default:
			internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível emitir certificado", nil)
		}
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, certificado)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filtro ListFilter
	q := r.URL.Query()

	if raw := q.Get("id_inscricao"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id_inscricao inválido", nil)
			return
		}
		filtro.IDInscricao = &parsed
	}
	if raw := q.Get("status"); raw != "" {
		status := Status(raw)
		filtro.Status = &status
	}

	certificados, err := h.service.List(r.Context(), filtro)
	if err != nil {
		if util.IsValidation(err) {
			internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar certificados", nil)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, certificados)
}
