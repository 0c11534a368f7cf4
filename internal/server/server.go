package server

import (
	"net/http"

	"github.com/hungryops/lunchpick/internal/session"
	"github.com/hungryops/lunchpick/internal/utils"
)

type Server struct {
	Session  *session.Session
	Username string
	Password string
}

func New(sess *session.Session, user, pass string) *Server {
	return &Server{
		Session:  sess,
		Username: user,
		Password: pass,
	}
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler builds the API mux. Split out from Start so tests can drive it
// through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/items", s.basicAuth(s.handleListItems))
	mux.HandleFunc("POST /api/items", s.basicAuth(s.handleAddItem))
	mux.HandleFunc("DELETE /api/items/{id}", s.basicAuth(s.handleRemoveItem))
	mux.HandleFunc("POST /api/items/{id}/weight", s.basicAuth(s.handleSetWeight))
	mux.HandleFunc("GET /api/history", s.basicAuth(s.handleHistory))
	mux.HandleFunc("DELETE /api/history", s.basicAuth(s.handleClearHistory))
	mux.HandleFunc("POST /api/pick", s.basicAuth(s.handlePick))
	mux.HandleFunc("GET /api/stats", s.basicAuth(s.handleStats))

	return mux
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
