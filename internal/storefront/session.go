package storefront

import (
	"context"
	"net/http"

	"VelvetStore/internal/session"
	"VelvetStore/pkg/kit"
)

type sessionResponse struct {
	User     *session.User `json:"user"`
	LoggedIn bool          `json:"logged_in"`
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}

	u, ok, err := rp.session.Current(r.Context())
	if err != nil {
		s.fail(w, r, "read session", err)
		return
	}
	if !ok {
		kit.WriteJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	kit.WriteJSON(w, http.StatusOK, sessionResponse{User: &u, LoggedIn: true})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	s.startSession(w, r, (*session.Repository).Login)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	s.startSession(w, r, (*session.Repository).Register)
}

type startFunc func(*session.Repository, context.Context, session.Credentials) (session.User, error)

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, start startFunc) {
	var c session.Credentials
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &c); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}

	u, err := start(rp.session, r.Context(), c)
	if err != nil {
		if kit.WriteValidation(w, r, err) {
			return
		}
		s.fail(w, r, "start session", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, sessionResponse{User: &u, LoggedIn: true})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	if err := rp.session.Logout(r.Context()); err != nil {
		s.fail(w, r, "logout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
