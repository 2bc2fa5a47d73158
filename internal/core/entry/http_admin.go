// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/groupdex/groupdex/internal/platform/request"
	"github.com/groupdex/groupdex/internal/platform/respond"
	"github.com/groupdex/groupdex/pkg/pagination"
)

// AdminRoutes returns the back-office entry routes. Callers must mount them
// behind admin authentication.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.adminList)
	router.Put("/{id}", handler.adminUpdate)
	router.Patch("/{id}/featured", handler.adminSetFeatured)
	router.Delete("/{id}", handler.adminDelete)
	return router
}

// adminList handles GET /admin/entries. Unlike the public listing it is
// never served from cache, so moderators always see live state.
func (handler *Handler) adminList(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, pagination.DefaultLimit)
	filter := filterFromRequest(request)

	entries, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if entries == nil {
		entries = []*Entry{}
	}

	respond.Paginated(writer, entries, pagination.NewMeta(params.Page, params.Limit, total))
}

// adminUpdate handles PUT /admin/entries/{id}: edit-in-place through the
// same submission pipeline, with the id pinned from the URL.
func (handler *Handler) adminUpdate(writer http.ResponseWriter, request *http.Request) {
	var input SubmitInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.GroupID = requestutil.Param(request, "id")

	entry, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

// featuredRequest is the payload of PATCH /admin/entries/{id}/featured.
type featuredRequest struct {
	Featured bool `json:"featured"`
}

// adminSetFeatured handles PATCH /admin/entries/{id}/featured.
func (handler *Handler) adminSetFeatured(writer http.ResponseWriter, request *http.Request) {
	var payload featuredRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.SetFeatured(request.Context(), requestutil.Param(request, "id"), payload.Featured)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

// adminDelete handles DELETE /admin/entries/{id}.
func (handler *Handler) adminDelete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
