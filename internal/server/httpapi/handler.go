package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/authgate/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type meResponse struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidInput):
			writeError(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, common.ErrorAlreadyExists):
			writeError(w, http.StatusConflict, "username already taken")
		case errors.Is(err, common.ErrorUnavailable):
			s.logger.Error(r.Context(), "credential store unavailable")
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", req.Username)
	writeJSON(w, http.StatusCreated, tokenResponse{Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidInput):
			writeError(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, common.ErrorUnauthorized):
			writeError(w, http.StatusUnauthorized, "invalid username or password")
		case errors.Is(err, common.ErrorUnavailable):
			s.logger.Error(r.Context(), "credential store unavailable")
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
		default:
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {

	username, ok := UsernameFromContext(r.Context())
	if !ok {
		// requireToken always sets the username; reaching this is a routing bug
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		Username: username,
		Message:  fmt.Sprintf("hello, %s", username),
	})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
