// Package server exposes the solver over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"
	"q.log/bigm/metrics"
	"q.log/bigm/model"
	"q.log/bigm/simplex"
)

// maxBodyBytes bounds the size of a solve request.
const maxBodyBytes = 1 << 20

// Request mirrors the arguments of simplex.SolveDense. Maximize defaults to
// true when omitted.
type Request struct {
	C            []float64   `json:"c"`
	A            [][]float64 `json:"A"`
	B            []float64   `json:"b"`
	Maximize     *bool       `json:"maximize,omitempty"`
	Sign         []string    `json:"sign,omitempty"`
	Unrestricted []bool      `json:"unrestricted,omitempty"`
}

type Response struct {
	X          []float64      `json:"x,omitempty"`
	Values     []float64      `json:"values,omitempty"`
	Objective  *float64       `json:"objective,omitempty"`
	Status     simplex.Status `json:"status"`
	Message    string         `json:"message"`
	Iterations int            `json:"iterations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	opts []simplex.Option
	mux  *http.ServeMux
}

// New builds the handler tree. Solver metrics are registered on reg and
// served from /metrics.
func New(reg *prometheus.Registry, opts ...simplex.Option) (*Server, error) {
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return nil, err
	}
	s := &Server{
		opts: append(append([]simplex.Option(nil), opts...), simplex.WithObserver(rec)),
		mux:  http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /solve", s.handleSolve)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	maximize := req.Maximize == nil || *req.Maximize

	sol, err := simplex.SolveDense(req.C, req.A, req.B, maximize, req.Sign, req.Unrestricted, s.opts...)
	if err != nil {
		code := http.StatusUnprocessableEntity
		if errors.Is(err, model.ErrShapeMismatch) || errors.Is(err, model.ErrUnknownSign) || errors.Is(err, model.ErrNonFinite) {
			code = http.StatusBadRequest
		}
		klog.V(2).Infof("solve failed: %v", err)
		writeJSON(w, code, errorResponse{Error: err.Error()})
		return
	}

	resp := Response{
		Status:     sol.Status,
		Message:    sol.Status.Message(),
		Iterations: sol.Iterations,
	}
	if sol.HasSolution() {
		obj := sol.Objective
		resp.X = sol.X
		resp.Values = sol.Values()
		resp.Objective = &obj
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		klog.Errorf("writing response: %v", err)
	}
}

// Run serves s on addr until ctx is cancelled.
func Run(ctx context.Context, addr string, s *Server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		klog.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
