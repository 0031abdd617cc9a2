package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	pkgerrors "github.com/matzehuels/pkgorder/pkg/errors"
	pkgio "github.com/matzehuels/pkgorder/pkg/io"
	"github.com/matzehuels/pkgorder/pkg/order"
	"github.com/matzehuels/pkgorder/pkg/pipeline"
)

// OrderRequest is the body of POST /v1/order.
type OrderRequest struct {
	Packages []pkgio.Record `json:"packages"`
	Pin      []string       `json:"pin,omitempty"`
}

// OrderedPackage is one entry of an OrderResponse.
type OrderedPackage struct {
	Location string `json:"location"`
	Name     string `json:"name"`
	Rank     int    `json:"rank"`
}

// OrderResponse is the body of a successful POST /v1/order.
type OrderResponse struct {
	ID     string           `json:"id"`
	Order  []OrderedPackage `json:"order"`
	Cached bool             `json:"cached"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidFormat, err, "decode request"))
		return
	}

	pkgs, err := pkgio.Packages(req.Packages)
	if err != nil {
		writeError(w, err)
		return
	}

	sorted, cached, err := s.runner.Order(r.Context(), pkgs, pipeline.Options{Pin: req.Pin})
	if err != nil {
		s.logger.Debug("order failed", "id", middleware.GetReqID(r.Context()), "err", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OrderResponse{
		ID:     middleware.GetReqID(r.Context()),
		Order:  ordered(sorted),
		Cached: cached,
	})
}

func ordered(pkgs []*order.Package) []OrderedPackage {
	out := make([]OrderedPackage, len(pkgs))
	for i, p := range pkgs {
		out[i] = OrderedPackage{Location: p.Location, Name: p.Name, Rank: p.Rank}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := pkgerrors.GetCode(err)
	if code == "" {
		code = pkgerrors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), ErrorResponse{Code: string(code), Error: err.Error()})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code pkgerrors.Code) int {
	switch code {
	case pkgerrors.ErrCodeCircularDependency:
		return http.StatusConflict
	case pkgerrors.ErrCodeInvalidInput,
		pkgerrors.ErrCodeInvalidFormat,
		pkgerrors.ErrCodeInvalidManifest,
		pkgerrors.ErrCodeDuplicatePackage:
		return http.StatusBadRequest
	case pkgerrors.ErrCodeNotFound, pkgerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
