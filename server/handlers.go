package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"autoforge/forge"
	"autoforge/render"
)

const maxIdeaBytes = 64 << 10

type createRequest struct {
	Idea string `json:"idea"`
}

type createResponse struct {
	ID     string       `json:"id"`
	Result forge.Result `json:"result"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := requestIDFromContext(r.Context())

	var req createRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxIdeaBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit), reqID)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body", reqID)
		return
	}

	res, err := forge.Generate(req.Idea)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	rec := record{
		ID:        uuid.NewString(),
		Idea:      req.Idea,
		CreatedAt: s.now().UTC(),
		Result:    res,
	}
	s.store.add(rec)
	s.logger.Info("forge created",
		"forge_id", rec.ID,
		"platform", res.Interpretation.Platform,
		"content_type", res.Interpretation.ContentType,
		"request_id", reqID,
	)
	writeSuccess(w, http.StatusCreated, "forge created", createResponse{ID: rec.ID, Result: res})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeSuccess(w, http.StatusOK, "", rec)
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeText(w, "text/plain; charset=utf-8", rec.Result.Prompt.Formatted)
}

func (s *Server) handleCaption(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeText(w, "text/plain; charset=utf-8", rec.Result.Copywriting.Caption)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}

	switch format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))); format {
	case "", "md", "markdown":
		writeText(w, "text/markdown; charset=utf-8", render.Markdown(rec.Result))
	case "html", "flat":
		out, err := render.HTML(rec.Result, render.Options{Flatten: format == "flat"})
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeText(w, "text/html; charset=utf-8", out)
	default:
		s.fail(w, r, errInvalidFormat)
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (record, bool) {
	rec, err := s.store.get(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return record{}, false
	}
	return rec, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	reqID := requestIDFromContext(r.Context())
	status, code := mapDomainError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", reqID)
		msg = "internal error"
	} else if errors.Is(err, forge.ErrInvalidInput) {
		msg = forge.ErrInvalidInput.Error()
	}
	writeError(w, status, code, msg, reqID)
}
