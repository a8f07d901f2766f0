package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sourdough-calculator/domain"
	"sourdough-calculator/service"
)

// maxBodyBytes bounds a calculate request; five numbers fit easily.
const maxBodyBytes = 4 << 10

type RecipeHandler struct {
	service *service.RecipeService
	log     *zap.Logger
}

func NewRecipeHandler(service *service.RecipeService, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{service: service, log: log}
}

type calculateResponse struct {
	Inputs domain.RecipeInputs  `json:"inputs"`
	Recipe domain.RecipeOutputs `json:"recipe"`
}

// CalculateRecipe handles POST /recipe/calculate. Fields missing from the
// body keep their default values.
func (h *RecipeHandler) CalculateRecipe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	input := domain.DefaultRecipeInputs()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		h.log.Debug("decoding request body", zap.Error(err))
		writeError(w, h.log, http.StatusBadRequest, "invalid request body", "")
		return
	}
	if dec.More() {
		writeError(w, h.log, http.StatusBadRequest, "invalid request body", "")
		return
	}

	result, err := h.service.CalculateRecipe(r.Context(), input)
	if err != nil {
		var inputErr *domain.InputError
		if errors.As(err, &inputErr) {
			writeError(w, h.log, http.StatusBadRequest, err.Error(), inputErr.Field)
			return
		}
		h.log.Error("calculating recipe", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "internal server error", "")
		return
	}

	writeJSON(w, h.log, http.StatusOK, calculateResponse{Inputs: input, Recipe: result})
}

// Defaults handles GET /recipe/defaults.
func (h *RecipeHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.log, http.StatusOK, domain.DefaultRecipeInputs())
}
