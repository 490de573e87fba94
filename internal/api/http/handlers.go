package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jekabolt/organic-reports/internal/dto"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) defaultPeriod() entity.Period {
	if s.c.DefaultPeriod == "" {
		return entity.Period30Days
	}
	return entity.Period(s.c.DefaultPeriod)
}

func (s *Server) getReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dr, err := parseDateRange(r, s.loc, s.now(), s.defaultPeriod())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := s.rec.Reconcile(ctx, dr)
	writeJSON(w, http.StatusOK, dto.ConvertEntityDatasetToJSON(res.Dataset, dr, res.LiveData(), res.Outcome.String()))
}

func (s *Server) downloadReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rt, err := parseReportType(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	dr, err := parseDateRange(r, s.loc, s.now(), s.defaultPeriod())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := s.rec.Reconcile(ctx, dr)
	a, err := s.exp.Export(ctx, rt, res.Dataset, dr, res.LiveData())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't export report",
			slog.String("type", rt.String()),
			slog.String("run_id", res.RunID),
			slog.String("err", err.Error()),
		)
		status := http.StatusBadGateway
		if errors.Is(err, gerr.ErrUnknownReportType) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(a.Body); err != nil {
		slog.Default().ErrorContext(ctx, "can't write report body",
			slog.String("err", err.Error()),
		)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response",
			slog.String("err", err.Error()),
		)
	}
}
