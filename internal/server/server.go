// Package server exposes the checker over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"spellchecker/internal/corrector"
	"spellchecker/internal/customdict"
	"spellchecker/internal/scan"
)

// CustomWords edits the persistent custom word list. Edits apply the next
// time the dictionary is loaded.
type CustomWords interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
}

type Server struct {
	checker *scan.Checker
	custom  CustomWords
	logger  *log.Logger
}

// New returns a Server. custom may be nil, in which case the custom-word
// endpoints answer 503.
func New(checker *scan.Checker, custom CustomWords, logger *log.Logger) *Server {
	return &Server{checker: checker, custom: custom, logger: logger}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/check", s.handleCheck)
	mux.HandleFunc("/api/v1/suggest", s.handleSuggest)
	mux.HandleFunc("/api/v1/custom-word", s.handleAddWord)
	mux.HandleFunc("/api/v1/custom-word/", s.handleRemoveWord)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	reports, err := s.checker.Check(r.Context(), "request", strings.NewReader(req.Text), scan.NewSeen())
	if err != nil {
		s.logger.Printf("check failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	word := strings.ToLower(strings.TrimSpace(req.Word))
	if _, err := customdict.Normalize(word); err != nil {
		writeError(w, http.StatusBadRequest, "word must be letters only")
		return
	}
	info := corrector.SuggestionInfo{
		Token:       word,
		Known:       s.checker.Dict.Contains(word),
		Suggestions: corrector.CorrectionSet{},
	}
	if !info.Known {
		info.Suggestions = s.checker.Suggest(word)
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if s.custom == nil {
		writeError(w, http.StatusServiceUnavailable, "custom words are not configured")
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := s.custom.Add(r.Context(), req.Word); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	if s.custom == nil {
		writeError(w, http.StatusServiceUnavailable, "custom words are not configured")
		return
	}
	word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if err := s.custom.Remove(r.Context(), word); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, customdict.ErrInvalidWord) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Printf("custom word store: %v", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}
