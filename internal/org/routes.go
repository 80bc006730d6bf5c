package org

import "github.com/go-chi/chi/v5"

// Mount registra as rotas protegidas do módulo organizacional.
func Mount(r chi.Router, handler *Handler) {
	handler.RegisterRoutes(r)
}

// MountAuth registra as rotas públicas de autenticação.
func MountAuth(r chi.Router, handler *Handler) {
	handler.RegisterAuthRoutes(r)
}
