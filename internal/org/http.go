package org

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	internalhttp "github.com/techsolutions/treinamentos/internal/http/response"
	"github.com/techsolutions/treinamentos/internal/util"
)

// Handler expõe os endpoints organizacionais e de autenticação.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAuthRoutes registra as rotas públicas de autenticação.
func (h *Handler) RegisterAuthRoutes(r chi.Router) {
	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)
}

// RegisterRoutes registra as rotas protegidas do módulo.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/cargos", h.createCargo)
	r.Get("/cargos", h.listCargos)
	r.Delete("/cargos/{idCargo}", h.deleteCargo)

	r.Post("/areas", h.createArea)
	r.Get("/areas", h.listAreas)
	r.Delete("/areas/{idArea}", h.deleteArea)

	r.Post("/perfis", h.createPerfil)
	r.Get("/perfis", h.listPerfis)

	r.Get("/colaboradores", h.listColaboradores)
	r.Get("/colaboradores/{idColaborador}", h.getColaborador)
	r.Put("/colaboradores/{idColaborador}", h.updateColaborador)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	colaborador, err := h.service.Register(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, colaborador)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var cred Credenciais
	if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	token, err := h.service.Login(r.Context(), cred, clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, ErrCredenciais):
			internalhttp.WriteError(w, http.StatusUnauthorized, "AUTH", "credenciais inválidas", nil)
		case errors.Is(err, ErrInativo):
			internalhttp.WriteError(w, http.StatusForbidden, "FORBIDDEN", "colaborador inativo", nil)
		default:
			internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível autenticar", nil)
		}
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, token)
}

func (h *Handler) createCargo(w http.ResponseWriter, r *http.Request) {
	var in CreateCargoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	cargo, err := h.service.CreateCargo(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, cargo)
}

func (h *Handler) listCargos(w http.ResponseWriter, r *http.Request) {
	cargos, err := h.service.ListCargos(r.Context())
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar cargos", nil)
		return
	}
	internalhttp.WriteJSON(w, http.StatusOK, cargos)
}

func (h *Handler) deleteCargo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idCargo")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.service.DeleteCargo(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Cargo não encontrado", nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover cargo", nil)
		return
	}

	internalhttp.WriteMessage(w, http.StatusOK, "Cargo deletado com sucesso")
}

func (h *Handler) createArea(w http.ResponseWriter, r *http.Request) {
	var in CreateAreaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	area, err := h.service.CreateArea(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, area)
}

func (h *Handler) listAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.ListAreas(r.Context())
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar áreas", nil)
		return
	}
	internalhttp.WriteJSON(w, http.StatusOK, areas)
}

func (h *Handler) deleteArea(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idArea")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.service.DeleteArea(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Área não encontrada", nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover área", nil)
		return
	}

	internalhttp.WriteMessage(w, http.StatusOK, "Área deletada com sucesso")
}

func (h *Handler) createPerfil(w http.ResponseWriter, r *http.Request) {
	var in CreatePerfilInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	perfil, err := h.service.CreatePerfil(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusCreated, perfil)
}

func (h *Handler) listPerfis(w http.ResponseWriter, r *http.Request) {
	perfis, err := h.service.ListPerfis(r.Context())
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar perfis", nil)
		return
	}
	internalhttp.WriteJSON(w, http.StatusOK, perfis)
}

func (h *Handler) listColaboradores(w http.ResponseWriter, r *http.Request) {
	var ativo *bool
	if raw := r.URL.Query().Get("ativo"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "ativo inválido", nil)
			return
		}
		ativo = &parsed
	}

	colaboradores, err := h.service.ListColaboradores(r.Context(), ativo)
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar colaboradores", nil)
		return
	}
	internalhttp.WriteJSON(w, http.StatusOK, colaboradores)
}

func (h *Handler) getColaborador(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idColaborador")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	colaborador, err := h.service.GetColaborador(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Colaborador não encontrado", nil)
			return
		}
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar colaborador", nil)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, colaborador)
}

func (h *Handler) updateColaborador(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "idColaborador")
	if err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var in UpdateColaboradorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return
	}

	colaborador, err := h.service.UpdateColaborador(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	internalhttp.WriteJSON(w, http.StatusOK, colaborador)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case util.IsValidation(err):
		internalhttp.WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
	case errors.Is(err, ErrEmailEmUso):
		internalhttp.WriteError(w, http.StatusConflict, "CONFLICT", "Email já cadastrado", nil)
	case errors.Is(err, ErrNotFound):
		internalhttp.WriteError(w, http.StatusNotFound, "NOT_FOUND", "registro não encontrado", nil)
	default:
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "erro interno", nil)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func clientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); ip != "" {
		parts := strings.Split(ip, ",")
		return strings.TrimSpace(parts[0])
	}
	return r.RemoteAddr
}
