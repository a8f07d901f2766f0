package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"sourdough-calculator/domain"
	"sourdough-calculator/repository"
)

const cacheKeyPrefix = "sourdough:recipe:"

// cachedRecipe carries the exact inputs it was computed from so a read can
// tell a hash collision from a hit.
type cachedRecipe struct {
	Inputs string               `json:"inputs"`
	Recipe domain.RecipeOutputs `json:"recipe"`
}

type RecipeService struct {
	cache repository.CacheRepository
	log   *zap.Logger
}

// NewRecipeService creates a RecipeService backed by the given cache.
func NewRecipeService(cache repository.CacheRepository, log *zap.Logger) *RecipeService {
	return &RecipeService{cache: cache, log: log}
}

// CalculateRecipe validates input and returns the rounded recipe, reading
// through the cache. Cache failures are logged and never fail the request.
func (s *RecipeService) CalculateRecipe(
	ctx context.Context,
	input domain.RecipeInputs,
) (domain.RecipeOutputs, error) {

	if err := ValidateInputs(input); err != nil {
		return domain.RecipeOutputs{}, err
	}

	signature := inputSignature(input)
	key := cacheKey(signature)

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("recipe cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var entry cachedRecipe
		switch err := json.Unmarshal([]byte(cached), &entry); {
		case err != nil:
			s.log.Warn("discarding malformed cache entry", zap.String("key", key))
		case entry.Inputs != signature:
			s.log.Warn("cache key collision", zap.String("key", key))
		default:
			s.log.Debug("recipe cache hit", zap.String("key", key))
			return entry.Recipe, nil
		}
	}

	result, err := Calculate(input)
	if err != nil {
		return domain.RecipeOutputs{}, err
	}

	encoded, err := json.Marshal(cachedRecipe{Inputs: signature, Recipe: result})
	if err != nil {
		return domain.RecipeOutputs{}, fmt.Errorf("encode recipe: %w", err)
	}
	if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
		s.log.Warn("recipe cache write failed", zap.String("key", key), zap.Error(err))
	}

	s.log.Debug("recipe calculated",
		zap.Float64("dough_weight", input.DoughWeight),
		zap.Float64("hydration", input.Hydration),
		zap.Float64("levain_percentage", input.LevainPercentage),
		zap.Float64("scale", input.Scale),
		zap.Int64("flour", result.Flour),
	)
	return result, nil
}

// Recalculate is the cached counterpart of the package-level Recalculate.
func (s *RecipeService) Recalculate(
	ctx context.Context,
	state domain.CalculatorState,
) (domain.CalculatorState, error) {
	out, err := s.CalculateRecipe(ctx, state.Inputs)
	if err != nil {
		return state, err
	}
	state.Recipe = &out
	return state, nil
}

// inputSignature lists only the fields the formula reads, so inputs that
// differ in prefermented flour share an entry.
func inputSignature(in domain.RecipeInputs) string {
	parts := []string{
		strconv.FormatFloat(in.DoughWeight, 'g', -1, 64),
		strconv.FormatFloat(in.LevainPercentage, 'g', -1, 64),
		strconv.FormatFloat(in.Scale, 'g', -1, 64),
		strconv.FormatFloat(in.Hydration, 'g', -1, 64),
	}
	return strings.Join(parts, "|")
}

func cacheKey(signature string) string {
	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64String(signature), 16)
}
