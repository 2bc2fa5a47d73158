// Copyright (c) 2026 Groupdex. All rights reserved.

package preview

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/groupdex/groupdex/internal/platform/request"
	"github.com/groupdex/groupdex/internal/platform/respond"
)

// Handler exposes the preview tooling over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a preview HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the back-office preview routes. Callers must mount
// them behind admin authentication.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/link", handler.fetch)
	router.Post("/generate", handler.generate)
	return router
}

// fetch handles GET /admin/preview/link?url=...
func (handler *Handler) fetch(writer http.ResponseWriter, request *http.Request) {
	preview, err := handler.service.Fetch(request.Context(), request.URL.Query().Get("url"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, preview)
}

// generateInput is the payload of POST /admin/preview/generate.
type generateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// generateOutput carries the hosted image URL back to the editor.
type generateOutput struct {
	ImageURL string `json:"image_url"`
}

// generate handles POST /admin/preview/generate.
func (handler *Handler) generate(writer http.ResponseWriter, request *http.Request) {
	var input generateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	imageURL, err := handler.service.Generate(request.Context(), input.Title, input.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, generateOutput{ImageURL: imageURL})
}
