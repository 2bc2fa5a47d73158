// Copyright (c) 2026 Groupdex. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/groupdex/groupdex/internal/platform/request"
	"github.com/groupdex/groupdex/internal/platform/respond"
)

// Handler exposes the auth operations over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates an auth HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the sign-in route, mounted without authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", handler.login)
	return router
}

// AdminRoutes returns the routes that require a verified token.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/me", handler.me)
	return router
}

// loginInput is the payload of POST /auth/login.
type loginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// login handles POST /auth/login.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Login, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

// me handles GET /admin/auth/me.
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Me(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}
