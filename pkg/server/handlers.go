package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matzehuels/mazegen/pkg/buildinfo"
	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/grid"
	"github.com/matzehuels/mazegen/pkg/hexgrid"
	"github.com/matzehuels/mazegen/pkg/pipeline"
)

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

type validateResponse struct {
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	Valid      bool               `json:"valid"`
	Mismatches []hexgrid.Mismatch `json:"mismatches"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	opts, err := mazeOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if opts.Height > s.opts.MaxCells/opts.Width {
		s.writeError(w, errs.New(errs.ErrCodeInvalidDimensions,
			"grid of %dx%d exceeds %d cells", opts.Height, opts.Width, s.opts.MaxCells))
		return
	}
	opts.Logger = s.logger

	res, err := s.runner.Generate(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cacheStatus := "miss"
	if res.CacheInfo.Hit {
		cacheStatus = "hit"
	}
	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Maze-Run", res.RunID)
	h.Set("X-Cache", cacheStatus)
	h.Set("Server", buildinfo.UserAgent())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Encoded)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBody)
	res, err := s.runner.Validate(r.Context(), body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Code:    errs.ErrCodeInvalidInput,
				Message: "request body too large",
			})
			return
		}
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{
		Rows:       res.Rows,
		Cols:       res.Cols,
		Valid:      res.Valid(),
		Mismatches: res.Mismatches,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Code:    errs.ErrCodeNotFound,
		Message: "no route for " + r.URL.Path,
	})
}

// mazeOptions reads generation options from query parameters. Absent
// parameters take the pipeline defaults.
func mazeOptions(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		Seed:      pipeline.DefaultSeed,
		Algorithm: q.Get("algorithm"),
		Mode:      q.Get("mode"),
	}

	var err error
	if opts.Height, err = intParam(q, "height", pipeline.DefaultHeight); err != nil {
		return opts, err
	}
	if opts.Width, err = intParam(q, "width", pipeline.DefaultWidth); err != nil {
		return opts, err
	}
	// Explicit zeros would otherwise be replaced by the defaults.
	if q.Has("height") || q.Has("width") {
		if err := errs.ValidateDimensions(opts.Height, opts.Width); err != nil {
			return opts, err
		}
	}
	if v := q.Get("seed"); v != "" {
		if opts.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return opts, errs.New(errs.ErrCodeInvalidInput, "seed %q is not an unsigned integer", v)
		}
	}
	if v := q.Get("entry"); v != "" {
		if opts.Entry, err = grid.ParseCoord(v); err != nil {
			return opts, err
		}
	}
	if v := q.Get("exit"); v != "" {
		if opts.Exit, err = grid.ParseCoord(v); err != nil {
			return opts, err
		}
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.New(errs.ErrCodeInvalidInput, "%s %q is not an integer", name, v)
	}
	return n, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errs.GetCode(err)
	switch {
	case errs.IsInvalid(err):
		status = http.StatusBadRequest
	case code == errs.ErrCodeNotFound:
		status = http.StatusNotFound
	default:
		s.logger.Error("request failed", "error", err)
	}
	if code == "" {
		code = errs.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errs.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
