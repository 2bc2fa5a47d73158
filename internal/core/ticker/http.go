// Copyright (c) 2026 Groupdex. All rights reserved.

package ticker

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/groupdex/groupdex/internal/platform/respond"
)

// Handler exposes the ticker over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a ticker HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public ticker route.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.get)
	return router
}

// tickerResponse bundles both feeds for one homepage render.
type tickerResponse struct {
	Sports []Item `json:"sports"`
	News   []Item `json:"news"`
}

// get handles GET /ticker.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, tickerResponse{
		Sports: handler.service.Items(request.Context(), FeedSports),
		News:   handler.service.Items(request.Context(), FeedNews),
	})
}
