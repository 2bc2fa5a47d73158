// Copyright (c) 2026 Groupdex. All rights reserved.

package asset

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/groupdex/groupdex/internal/platform/respond"
)

// Handler exposes the upload endpoint over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates an asset HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the back-office upload route. Callers must mount it
// behind admin authentication.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.upload)
	return router
}

// uploadResponse carries the stored object's public URL.
type uploadResponse struct {
	URL string `json:"url"`
}

// upload handles POST /admin/uploads (multipart form, field "file").
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, MaxUploadBytes)

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	url, err := handler.service.Upload(request.Context(), header.Header.Get("Content-Type"), file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, uploadResponse{URL: url})
}
