package http

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"sourdough-calculator/domain"
	"sourdough-calculator/service"
)

type ContentHandler struct {
	service *service.ContentService
	log     *zap.Logger
}

func NewContentHandler(service *service.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{service: service, log: log}
}

func wantsMarkdown(r *http.Request) bool {
	return r.URL.Query().Get("format") == "markdown"
}

// Guide handles GET /guide. ?format=markdown returns the rendered document.
func (h *ContentHandler) Guide(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	guide := h.service.Guide()
	if wantsMarkdown(r) {
		writeMarkdown(w, h.log, service.GuideMarkdown(guide))
		return
	}
	writeJSON(w, h.log, http.StatusOK, guide)
}

// Troubleshooting handles GET /troubleshooting.
func (h *ContentHandler) Troubleshooting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	t := h.service.Troubleshooting()
	if wantsMarkdown(r) {
		writeMarkdown(w, h.log, service.TroubleshootingMarkdown(t))
		return
	}
	writeJSON(w, h.log, http.StatusOK, t)
}

type searchResponse struct {
	Query   string                        `json:"query"`
	Matches []domain.TroubleshootingMatch `json:"matches"`
}

// Search handles GET /troubleshooting/search?q=.
func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	matches, err := h.service.SearchTroubleshooting(query)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			writeError(w, h.log, http.StatusBadRequest, "query parameter q is required", "q")
			return
		}
		writeError(w, h.log, http.StatusBadRequest, err.Error(), "q")
		return
	}
	if matches == nil {
		matches = []domain.TroubleshootingMatch{}
	}

	if wantsMarkdown(r) {
		writeMarkdown(w, h.log, service.MatchesMarkdown(query, matches))
		return
	}
	writeJSON(w, h.log, http.StatusOK, searchResponse{Query: query, Matches: matches})
}

type healthResponse struct {
	Status string      `json:"status"`
	Site   domain.Site `json:"site"`
}

// Health handles GET /health.
func (h *ContentHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, h.log, http.StatusOK, healthResponse{Status: "ok", Site: h.service.Site()})
}
