package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wallboard/internal/common"
	"wallboard/internal/server/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

type postCreateRequest struct {
	WallOwner string `json:"wall_owner"`
	Content   string `json:"content"`
}

type statusCreateRequest struct {
	ClientName string `json:"client_name"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Matrix"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			s.writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		s.logger.Error(r.Context(), "registration failure", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", user.Username)
	s.writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		s.logger.Error(r.Context(), "login failure", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {

	var req postCreateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.WallOwner == "" || req.Content == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "wall_owner and content are required")
		return
	}

	user, ok := userFrom(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	post, err := s.posts.Create(r.Context(), req.WallOwner, user.Username, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Wall owner not found")
			return
		}
		s.logger.Error(r.Context(), "post creation failure", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleGetWall(w http.ResponseWriter, r *http.Request) {

	username := chi.URLParam(r, "username")

	posts, err := s.posts.ListWall(r.Context(), username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error(r.Context(), "wall fetch failure", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {

	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "user list failure", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleCreateStatus(w http.ResponseWriter, r *http.Request) {

	var req statusCreateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.ClientName == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "client_name is required")
		return
	}

	check, err := s.status.Create(r.Context(), req.ClientName)
	if err != nil {
		s.logger.Error(r.Context(), "status check failure", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, check)
}

func (s *Server) handleListStatus(w http.ResponseWriter, r *http.Request) {

	checks, err := s.status.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "status list failure", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, checks)
}
