// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/groupdex/groupdex/internal/core/rated"
	"github.com/groupdex/groupdex/internal/core/settings"
	requestutil "github.com/groupdex/groupdex/internal/platform/request"
	"github.com/groupdex/groupdex/internal/platform/respond"
	"github.com/groupdex/groupdex/pkg/convert"
	"github.com/groupdex/groupdex/pkg/pagination"
	"github.com/groupdex/groupdex/pkg/query"
)

// Handler exposes the public entry operations over HTTP.
type Handler struct {
	service  *Service
	settings *settings.Service
	codec    *rated.Codec
	cache    Cache
}

// NewHandler creates an entry HTTP handler.
func NewHandler(service *Service, settings *settings.Service, codec *rated.Codec, cache Cache) *Handler {
	return &Handler{
		service:  service,
		settings: settings,
		codec:    codec,
		cache:    cache,
	}
}

// Routes returns the public entry routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Post("/", handler.submit)
	router.Get("/{idOrSlug}", handler.get)
	router.Post("/{id}/ratings", handler.rate)
	router.Post("/{id}/click", handler.click)
	return router
}

// list handles GET /entries with a Redis read-through on the raw query.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	cacheKey := request.URL.RawQuery

	if payload, hit := handler.cache.GetListing(request.Context(), cacheKey); hit {
		writeRawJSON(writer, payload)
		return
	}

	moderation, err := handler.settings.GetModeration(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request, moderation.GroupsPerPage)
	filter := filterFromRequest(request)

	entries, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if entries == nil {
		entries = []*Entry{}
	}

	envelope := respond.PaginatedEnvelope{
		Data: entries,
		Meta: pagination.NewMeta(params.Page, params.Limit, total),
	}

	if payload, err := json.Marshal(envelope); err == nil {
		handler.cache.SetListing(request.Context(), cacheKey, payload)
	}

	respond.JSON(writer, http.StatusOK, envelope)
}

// get handles GET /entries/{idOrSlug}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	idOrSlug := requestutil.Param(request, "idOrSlug")

	if payload, hit := handler.cache.GetDetail(request.Context(), idOrSlug); hit {
		writeRawJSON(writer, payload)
		return
	}

	entry, err := handler.service.Get(request.Context(), idOrSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	envelope := respond.SuccessEnvelope{Data: entry}
	if payload, err := json.Marshal(envelope); err == nil {
		handler.cache.SetDetail(request.Context(), idOrSlug, payload)
	}

	respond.JSON(writer, http.StatusOK, envelope)
}

// submit handles POST /entries.
//
// The edit-in-place id is an administrator-only capability, so it is
// discarded here regardless of what the client sent.
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input SubmitInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.GroupID = ""

	entry, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// A bump responds 200 with the refreshed entry; only a brand-new entry
	// responds 201.
	if entry.SubmissionCount > 1 {
		respond.OK(writer, entry)
		return
	}
	respond.Created(writer, entry)
}

// ratingRequest is the payload of POST /entries/{id}/ratings.
type ratingRequest struct {
	Rating int `json:"rating"`
}

// rate handles POST /entries/{id}/ratings.
func (handler *Handler) rate(writer http.ResponseWriter, request *http.Request) {
	entryID := requestutil.Param(request, "id")

	var payload ratingRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ratedSet := handler.codec.FromRequest(request)
	alreadyRated := rated.Contains(ratedSet, entryID)

	result, err := handler.service.SubmitRating(request.Context(), entryID, payload.Rating, alreadyRated)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Only a successful transaction extends the rated set.
	handler.codec.Write(writer, append(ratedSet, entryID))
	respond.OK(writer, result)
}

// clickResponse carries the invite link back to the frontend for redirect.
type clickResponse struct {
	Link string `json:"link"`
}

// click handles POST /entries/{id}/click.
func (handler *Handler) click(writer http.ResponseWriter, request *http.Request) {
	entryID := requestutil.Param(request, "id")

	link, err := handler.service.RegisterClick(request.Context(), entryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, clickResponse{Link: link})
}

// filterFromRequest maps listing query parameters onto a Filter.
func filterFromRequest(request *http.Request) Filter {
	filter := Filter{
		Query:    request.URL.Query().Get("q"),
		Category: request.URL.Query().Get("category"),
		Country:  request.URL.Query().Get("country"),
		Type:     request.URL.Query().Get("type"),
		Tags:     query.StringSlice(request.URL.Query().Get("tags")),
		Sort:     request.URL.Query().Get("sort"),
	}

	if raw := request.URL.Query().Get("featured"); raw != "" {
		featured := convert.ToBool(raw)
		filter.Featured = &featured
	}

	return filter
}

// writeRawJSON serves a pre-marshaled cache payload.
func writeRawJSON(writer http.ResponseWriter, payload []byte) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(payload)
}
