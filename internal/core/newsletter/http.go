// Copyright (c) 2026 Groupdex. All rights reserved.

package newsletter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/groupdex/groupdex/internal/platform/request"
	"github.com/groupdex/groupdex/internal/platform/respond"
)

// Handler exposes the newsletter signup over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a newsletter HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public signup route.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/subscribe", handler.subscribe)
	return router
}

// subscribeInput is the payload of POST /newsletter/subscribe.
type subscribeInput struct {
	Email string `json:"email"`
}

// subscribeResponse confirms the signup.
type subscribeResponse struct {
	Subscribed bool `json:"subscribed"`
}

// subscribe handles POST /newsletter/subscribe.
func (handler *Handler) subscribe(writer http.ResponseWriter, request *http.Request) {
	var input subscribeInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Subscribe(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, subscribeResponse{Subscribed: true})
}
