package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sourdough-calculator/domain"
	"sourdough-calculator/repository"
)

type MockCache struct {
	Data      map[string]string
	GetCalled int
	SetCalled int
	ForceErr  bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	m.GetCalled++
	if m.ForceErr {
		return "", false, errors.New("cache down")
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value string) error {
	m.SetCalled++
	if m.ForceErr {
		return errors.New("cache down")
	}
	m.Data[key] = value
	return nil
}

func TestCalculateRecipe_StoresInCache(t *testing.T) {
	cache := NewMockCache()
	service := NewRecipeService(cache, zap.NewNop())

	result, err := service.CalculateRecipe(context.Background(), domain.DefaultRecipeInputs())
	require.NoError(t, err)

	assert.Equal(t, int64(595), result.Flour)
	assert.Equal(t, 1, cache.SetCalled)
	assert.Len(t, cache.Data, 1)
}

func TestCalculateRecipe_ServesFromCache(t *testing.T) {
	cache := NewMockCache()
	service := NewRecipeService(cache, zap.NewNop())
	input := domain.DefaultRecipeInputs()

	sig := inputSignature(input)
	cache.Data[cacheKey(sig)] = `{"inputs":"` + sig + `","recipe":{"flour":1,"water":2,"salt":3,"levain":4}}`

	result, err := service.CalculateRecipe(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, domain.RecipeOutputs{Flour: 1, Water: 2, Salt: 3, Levain: 4}, result)
	assert.Zero(t, cache.SetCalled)
}

func TestCalculateRecipe_MalformedCacheEntryIsRecomputed(t *testing.T) {
	cache := NewMockCache()
	service := NewRecipeService(cache, zap.NewNop())
	input := domain.DefaultRecipeInputs()
	cache.Data[cacheKey(inputSignature(input))] = "not json"

	result, err := service.CalculateRecipe(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(393), result.Water)
	assert.Equal(t, 1, cache.SetCalled)
}

func TestCalculateRecipe_CacheFailureIsNotFatal(t *testing.T) {
	cache := NewMockCache()
	cache.ForceErr = true
	service := NewRecipeService(cache, zap.NewNop())

	result, err := service.CalculateRecipe(context.Background(), domain.DefaultRecipeInputs())
	require.NoError(t, err)
	assert.Equal(t, int64(119), result.Levain)
}

func TestCalculateRecipe_InvalidInputSkipsCache(t *testing.T) {
	cache := NewMockCache()
	service := NewRecipeService(cache, zap.NewNop())

	input := domain.DefaultRecipeInputs()
	input.DoughWeight = 0

	_, err := service.CalculateRecipe(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrInvalidRecipeInput)

	assert.Zero(t, cache.GetCalled)
	assert.Zero(t, cache.SetCalled)
}

func TestCacheKey_IgnoresPrefermentedFlour(t *testing.T) {
	a := domain.DefaultRecipeInputs()
	b := a
	b.PrefermentedFlour = 250
	c := a
	c.Hydration = 70

	assert.Equal(t, cacheKey(inputSignature(a)), cacheKey(inputSignature(b)))
	assert.NotEqual(t, cacheKey(inputSignature(a)), cacheKey(inputSignature(c)))
}

func TestCalculateRecipe_EntryForOtherInputsIsIgnored(t *testing.T) {
	cache := NewMockCache()
	service := NewRecipeService(cache, zap.NewNop())
	input := domain.DefaultRecipeInputs()

	// Same key, but the entry was computed from different inputs.
	cache.Data[cacheKey(inputSignature(input))] = `{"inputs":"2000|20|1|66","recipe":{"flour":1190,"water":786,"salt":24,"levain":238}}`

	result, err := service.CalculateRecipe(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, domain.RecipeOutputs{Flour: 595, Water: 393, Salt: 12, Levain: 119}, result)
	assert.Equal(t, 1, cache.SetCalled, "entry is overwritten with the correct recipe")
}

func TestCalculateRecipe_MemoryCacheStaysBounded(t *testing.T) {
	cache := repository.NewMemoryCache(time.Hour, 100)
	service := NewRecipeService(cache, zap.NewNop())

	input := domain.DefaultRecipeInputs()
	for i := 0; i < 5000; i++ {
		input.DoughWeight = float64(500 + i)
		_, err := service.CalculateRecipe(context.Background(), input)
		require.NoError(t, err)
	}

	assert.LessOrEqual(t, cache.Len(), 100)
}

func TestRecipeService_Recalculate(t *testing.T) {
	service := NewRecipeService(NewMockCache(), zap.NewNop())

	state, err := service.Recalculate(context.Background(), domain.NewCalculatorState())
	require.NoError(t, err)
	require.NotNil(t, state.Recipe)
	assert.Equal(t, int64(12), state.Recipe.Salt)
}
