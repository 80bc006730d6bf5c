package regras

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	internalhttp "github.com/techsolutions/treinamentos/internal/http/response"
	"github.com/techsolutions/treinamentos/internal/util"
)

// Handler expõe os endpoints de regras de treinamento obrigatório.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/regras-obrigatorias", h.createRegra)
	r.Get("/regras-obrigatorias", h.listRegras)
	r.Delete("/regras-obrigatorias/{idRegra}", h.deleteRegra)
	r.Get("/regras-obrigatorias/pendencias", h.pendencias)
}

func (h *Handler) createRegra(w http.ResponseWriter, r *http.Request) {
	var in CreateRegraInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	regra, err := h.service.CreateRegra(r.Context(), in)
	if err != nil {
		if util.IsValidation(err) {
			internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível criar regra", nil)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, regra)
}

func (h *Handler) listRegras(w http.ResponseWriter, r *http.Request) {
	regras, err := h.service.ListRegras(r.Context())
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar regras", nil)
		return
	}
	internalhttp.WriteJSON(w, http.StatusOK, regras)
}

func (h *Handler) deleteRegra(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "idRegra"), 10, 64)
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.service.DeleteRegra(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Regra não encontrada", nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover regra", nil)
		return
	}

	internalhttp.WriteMessage(w, http.StatusOK, "Regra deletada com sucesso")
}

func (h *Handler) pendencias(w http.ResponseWriter, r *http.Request) {
	pendencias, err := h.service.Pendencias(r.Context())
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível calcular pendências", nil)
		return
	}
	internalhttp.WriteJSON(w, http.StatusOK, pendencias)
}
