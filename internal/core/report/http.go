// Copyright (c) 2026 Groupdex. All rights reserved.

package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/groupdex/groupdex/internal/platform/request"
	"github.com/groupdex/groupdex/internal/platform/respond"
	"github.com/groupdex/groupdex/pkg/pagination"
)

// Handler exposes the report operations over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a report HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public report intake route.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.create)
	return router
}

// AdminRoutes returns the back-office report routes. Callers must mount
// them behind admin authentication.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Delete("/{id}", handler.resolve)
	return router
}

// create handles POST /reports.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, report)
}

// list handles GET /admin/reports.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, pagination.DefaultLimit)

	reports, total, err := handler.service.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if reports == nil {
		reports = []*Report{}
	}

	respond.Paginated(writer, reports, pagination.NewMeta(params.Page, params.Limit, total))
}

// resolve handles DELETE /admin/reports/{id}.
func (handler *Handler) resolve(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Resolve(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
