package service

const (
	SaltPercentage = 2.0 // fixed salt baker's percentage

	MaxDoughWeightGrams = 1_000_000.0 // one tonne
	MaxScale            = 1000.0
	MaxLevainPercentage = 1000.0

	MaxSearchQueryLength = 200
	MaxSearchResults     = 20
)
