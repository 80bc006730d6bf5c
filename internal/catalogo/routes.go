package catalogo

import "github.com/go-chi/chi/v5"

// Mount registra as rotas do catálogo.
func Mount(r chi.Router, handler *Handler) {
	handler.RegisterRoutes(r)
}
