package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	perrors "github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/grid"
	"github.com/matzehuels/plotkit/pkg/io"
	"github.com/matzehuels/plotkit/pkg/render/sink"
)

// HeaderCache reports whether a render was served from the cache.
const HeaderCache = "X-Cache"

// GridResponse is the body of GET /v1/grid.
type GridResponse struct {
	Rows   int `json:"rows"`
	Cols   int `json:"cols"`
	Cells  int `json:"cells"`
	Unused int `json:"unused"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    perrors.Code `json:"code"`
	Message string       `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n, err := strconv.Atoi(q.Get("n"))
	if err != nil {
		s.writeError(w, r, perrors.New(perrors.ErrCodeInvalidArgument, "n must be an integer"))
		return
	}
	square := true
	if v := q.Get("square"); v != "" {
		if square, err = strconv.ParseBool(v); err != nil {
			s.writeError(w, r, perrors.New(perrors.ErrCodeInvalidArgument, "square must be a boolean"))
			return
		}
	}

	shape, err := grid.For(n, square)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, GridResponse{
		Rows:   shape.Rows,
		Cols:   shape.Cols,
		Cells:  shape.Cells(),
		Unused: shape.Unused(n),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}

	spec, err := decodeSpec(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := io.RequireInline(spec); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Render(r.Context(), spec, []string{format})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "miss"
	if res.CacheHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", sink.ContentType(format))
	w.Header().Set(HeaderCache, cacheStatus)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Artifacts[format]); err != nil {
		s.logger.Debug("write response failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
	}
}

// decodeSpec reads JSON when the request says so and TOML otherwise.
func decodeSpec(r *http.Request) (*io.Spec, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var (
		spec *io.Spec
		err  error
	)
	if mediaType == "application/json" {
		spec, err = io.ReadJSON(r.Body)
	} else {
		spec, err = io.ReadTOML(r.Body)
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
	}
	return spec, err
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code perrors.Code) int {
	switch code {
	case perrors.ErrCodeInvalidArgument, perrors.ErrCodeInvalidInput,
		perrors.ErrCodeInvalidShape, perrors.ErrCodeInvalidFormat,
		perrors.ErrCodeInvalidKind, perrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case perrors.ErrCodeNotFound, perrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case perrors.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := perrors.GetCode(err)
	status := StatusFor(code)
	msg := perrors.UserMessage(err)
	if code == "" {
		code = perrors.ErrCodeInternal
		msg = "internal error"
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
	}
	s.writeJSON(w, r, status, ErrorResponse{Code: code, Message: msg})
}

// writeJSON sends v with status. The header is already out when encoding
// fails, so the error is only logged.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("write response failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
	}
}
