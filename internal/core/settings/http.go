// Copyright (c) 2026 Groupdex. All rights reserved.

package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/groupdex/groupdex/internal/platform/request"
	"github.com/groupdex/groupdex/internal/platform/respond"
)

// Handler exposes the settings operations over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a settings HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes returns the read-only routes consumed by the directory frontend.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getPublic)
	return router
}

// AdminRoutes returns the back-office routes. Callers must mount them behind
// admin authentication.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/moderation", handler.getModeration)
	router.Put("/moderation", handler.updateModeration)
	router.Get("/layout", handler.getLayout)
	router.Put("/layout", handler.updateLayout)
	return router
}

// publicView is the combined settings payload served to the frontend.
type publicView struct {
	Moderation Moderation `json:"moderation"`
	Layout     Layout     `json:"layout"`
}

// getPublic handles GET /settings.
func (handler *Handler) getPublic(writer http.ResponseWriter, request *http.Request) {
	moderation, err := handler.service.GetModeration(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	layout, err := handler.service.GetLayout(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, publicView{Moderation: moderation, Layout: layout})
}

// getModeration handles GET /admin/settings/moderation.
func (handler *Handler) getModeration(writer http.ResponseWriter, request *http.Request) {
	moderation, err := handler.service.GetModeration(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, moderation)
}

// updateModeration handles PUT /admin/settings/moderation.
func (handler *Handler) updateModeration(writer http.ResponseWriter, request *http.Request) {
	var payload Moderation
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateModeration(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

// getLayout handles GET /admin/settings/layout.
func (handler *Handler) getLayout(writer http.ResponseWriter, request *http.Request) {
	layout, err := handler.service.GetLayout(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, layout)
}

// updateLayout handles PUT /admin/settings/layout.
func (handler *Handler) updateLayout(writer http.ResponseWriter, request *http.Request) {
	var payload Layout
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateLayout(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}
