//nolint:whitespace //can't make both the linter and editor happy :(
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/velosprint/sprintlog-go/log"
	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/pkg/service"
)

// SessionAPI is what the handlers need from the service layer; split out so
// handler tests can run against a stub.
type SessionAPI interface {
	List(ctx context.Context) ([]*model.Session, error)
	Get(ctx context.Context, key string) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
	Delete(ctx context.Context, key string) (int, error)
	Metrics(ctx context.Context, key string, choice model.SplitChoice) (
		[]model.SegmentRow, error)
	Series(ctx context.Context, key string, choice model.SplitChoice) (
		[]model.SeriesPoint, error)
	Compare(ctx context.Context, keys []string, mode service.CompareMode,
		choice model.SplitChoice, referenceKey string) ([]model.TableRow, error)
	CompareChart(ctx context.Context, keys []string) ([]model.ChartRow, error)
}

var _ SessionAPI = (*service.SessionService)(nil)

type Server struct {
	sessions SessionAPI
}

func NewServer(sessions SessionAPI) *Server {
	return &Server{sessions: sessions}
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/sessions", s.listSessions)
	mux.HandleFunc("GET /api/sessions/{key}", s.getSession)
	mux.HandleFunc("PUT /api/sessions/{key}", s.putSession)
	mux.HandleFunc("DELETE /api/sessions/{key}", s.deleteSession)
	mux.HandleFunc("GET /api/sessions/{key}/metrics", s.sessionMetrics)
	mux.HandleFunc("GET /api/sessions/{key}/series", s.sessionSeries)
	mux.HandleFunc("GET /api/compare", s.compareSessions)
	mux.HandleFunc("GET /api/compare/chart", s.compareChart)
	return mux
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessions.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, sessions)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, sess)
}

func (s *Server) putSession(w http.ResponseWriter, r *http.Request) {
	var sess model.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	key := r.PathValue("key")
	if sess.VideoKey == "" {
		sess.VideoKey = key
	}
	if sess.VideoKey != key {
		http.Error(w, "videoKey does not match path", http.StatusBadRequest)
		return
	}
	if err := s.sessions.Save(r.Context(), &sess); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	num, err := s.sessions.Delete(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, err)
		return
	}
	if num == 0 {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sessionMetrics(w http.ResponseWriter, r *http.Request) {
	choice, ok := splitChoiceParam(w, r)
	if !ok {
		return
	}
	rows, err := s.sessions.Metrics(r.Context(), r.PathValue("key"), choice)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, rows)
}

func (s *Server) sessionSeries(w http.ResponseWriter, r *http.Request) {
	choice, ok := splitChoiceParam(w, r)
	if !ok {
		return
	}
	points, err := s.sessions.Series(r.Context(), r.PathValue("key"), choice)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, points)
}

func (s *Server) compareSessions(w http.ResponseWriter, r *http.Request) {
	keys, ok := keysParam(w, r)
	if !ok {
		return
	}
	choice, ok := splitChoiceParam(w, r)
	if !ok {
		return
	}
	mode := service.CompareMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = service.ModeTotal
	}
	if mode == service.ModeSplit && choice == "" {
		http.Error(w, "mode=split requires a split parameter", http.StatusBadRequest)
		return
	}
	rows, err := s.sessions.Compare(
		r.Context(), keys, mode, choice, r.URL.Query().Get("ref"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownMode) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, rows)
}

func (s *Server) compareChart(w http.ResponseWriter, r *http.Request) {
	keys, ok := keysParam(w, r)
	if !ok {
		return
	}
	rows, err := s.sessions.CompareChart(r.Context(), keys)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, rows)
}

func keysParam(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	raw := r.URL.Query().Get("keys")
	if raw == "" {
		http.Error(w, "missing keys parameter", http.StatusBadRequest)
		return nil, false
	}
	return strings.Split(raw, ","), true
}

func splitChoiceParam(w http.ResponseWriter, r *http.Request) (model.SplitChoice, bool) {
	switch choice := model.SplitChoice(r.URL.Query().Get("split")); choice {
	case "", model.SplitQuarter, model.SplitHalf, model.SplitFull:
		return choice, true
	default:
		http.Error(w, "invalid split parameter", http.StatusBadRequest)
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("could not encode response", log.ErrorField(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	log.Error("request failed", log.ErrorField(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
