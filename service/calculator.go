package service

import (
	"math"

	"sourdough-calculator/domain"
)

// roundGrams rounds half up to the nearest whole gram.
func roundGrams(value float64) int64 {
	return int64(math.Floor(value + 0.5))
}

// Derive computes the unrounded ingredient weights for in.
//
// Total flour is recovered from the total dough weight, which is
// flour * (1 + hydration + salt) in baker's percentages, and then scaled.
// Water, salt and levain are percentages of that scaled flour.
func Derive(in domain.RecipeInputs) (domain.RecipeBreakdown, error) {
	if err := ValidateInputs(in); err != nil {
		return domain.RecipeBreakdown{}, err
	}

	hydrationDecimal := in.Hydration / 100
	levainDecimal := in.LevainPercentage / 100
	saltDecimal := SaltPercentage / 100

	totalFlourBase := in.DoughWeight / (1 + hydrationDecimal + saltDecimal)
	totalFlour := totalFlourBase * in.Scale

	return domain.RecipeBreakdown{
		Flour:  totalFlour,
		Water:  totalFlour * hydrationDecimal,
		Salt:   totalFlour * saltDecimal,
		Levain: totalFlour * levainDecimal,
	}, nil
}

// Calculate derives the recipe and rounds every field independently.
func Calculate(in domain.RecipeInputs) (domain.RecipeOutputs, error) {
	b, err := Derive(in)
	if err != nil {
		return domain.RecipeOutputs{}, err
	}
	return Round(b), nil
}

func Round(b domain.RecipeBreakdown) domain.RecipeOutputs {
	return domain.RecipeOutputs{
		Flour:  roundGrams(b.Flour),
		Water:  roundGrams(b.Water),
		Salt:   roundGrams(b.Salt),
		Levain: roundGrams(b.Levain),
	}
}

// Recalculate returns a copy of state whose Recipe is computed from its
// inputs. On error the state is returned unchanged, previous recipe included.
func Recalculate(state domain.CalculatorState) (domain.CalculatorState, error) {
	out, err := Calculate(state.Inputs)
	if err != nil {
		return state, err
	}
	state.Recipe = &out
	return state, nil
}

// ValidateInputs rejects inputs that would produce non-finite or negative grams.
func ValidateInputs(in domain.RecipeInputs) error {
	for _, name := range domain.Fields() {
		v, _ := in.Field(name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &domain.InputError{Field: name, Value: v, Reason: "must be a finite number"}
		}
	}

	if in.DoughWeight <= 0 {
		return &domain.InputError{Field: domain.FieldDoughWeight, Value: in.DoughWeight, Reason: "must be greater than zero"}
	}
	if in.DoughWeight > MaxDoughWeightGrams {
		return &domain.InputError{Field: domain.FieldDoughWeight, Value: in.DoughWeight, Reason: "exceeds the maximum dough weight"}
	}

	if 1+in.Hydration/100+SaltPercentage/100 <= 0 {
		return &domain.InputError{Field: domain.FieldHydration, Value: in.Hydration, Reason: "leaves no room for flour in the dough"}
	}
	if in.Hydration < 0 {
		return &domain.InputError{Field: domain.FieldHydration, Value: in.Hydration, Reason: "must not be negative"}
	}

	if in.LevainPercentage < 0 {
		return &domain.InputError{Field: domain.FieldLevainPercentage, Value: in.LevainPercentage, Reason: "must not be negative"}
	}
	if in.LevainPercentage > MaxLevainPercentage {
		return &domain.InputError{Field: domain.FieldLevainPercentage, Value: in.LevainPercentage, Reason: "exceeds the maximum levain percentage"}
	}

	if in.Scale < 0 {
		return &domain.InputError{Field: domain.FieldScale, Value: in.Scale, Reason: "must not be negative"}
	}
	if in.Scale > MaxScale {
		return &domain.InputError{Field: domain.FieldScale, Value: in.Scale, Reason: "exceeds the maximum scale"}
	}

	return nil
}
