package certificado

import "github.com/go-chi/chi/v5"

// Mount registra as rotas de certificados.
func Mount(r chi.Router, handler *Handler) {
	handler.RegisterRoutes(r)
}
