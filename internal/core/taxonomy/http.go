// Copyright (c) 2026 Groupdex. All rights reserved.

package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/groupdex/groupdex/internal/platform/request"
	"github.com/groupdex/groupdex/internal/platform/respond"
)

// Handler exposes the taxonomy operations over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a taxonomy HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public read-only vocabulary routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/categories", handler.listKind(KindCategory))
	router.Get("/countries", handler.listKind(KindCountry))
	return router
}

// AdminRoutes returns the back-office vocabulary routes. Callers must mount
// them behind admin authentication.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/{kind}", handler.create)
	router.Delete("/{kind}/{value}", handler.delete)
	return router
}

// listKind builds a GET handler bound to one vocabulary.
func (handler *Handler) listKind(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		terms, err := handler.service.List(request.Context(), kind)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if terms == nil {
			terms = []Term{}
		}
		respond.OK(writer, terms)
	}
}

// create handles POST /admin/taxonomy/{kind}.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var term Term
	if err := requestutil.DecodeJSON(request, &term); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), Kind(requestutil.Param(request, "kind")), term)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

// delete handles DELETE /admin/taxonomy/{kind}/{value}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	kind := Kind(requestutil.Param(request, "kind"))
	value := requestutil.Param(request, "value")

	if err := handler.service.Delete(request.Context(), kind, value); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
