package http

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter mounts the API. Only calculation is rate limited; the content
// endpoints serve static documents.
func NewRouter(
	recipeHandler *RecipeHandler,
	contentHandler *ContentHandler,
	limiter *RateLimiter,
	log *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(
		"/recipe/calculate",
		RateLimitMiddleware(
			limiter,
			log,
			http.HandlerFunc(recipeHandler.CalculateRecipe),
		),
	)
	mux.HandleFunc("/recipe/defaults", recipeHandler.Defaults)

	mux.HandleFunc("/guide", contentHandler.Guide)
	mux.HandleFunc("/troubleshooting", contentHandler.Troubleshooting)
	mux.HandleFunc("/troubleshooting/search", contentHandler.Search)
	mux.HandleFunc("/health", contentHandler.Health)

	return RequestLogMiddleware(log, mux)
}
