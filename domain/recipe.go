package domain

import "fmt"

// Field names, shared by the JSON API, the terminal form and InputError.
const (
	FieldDoughWeight       = "dough_weight"
	FieldPrefermentedFlour = "prefermented_flour"
	FieldLevainPercentage  = "levain_percentage"
	FieldScale             = "scale"
	FieldHydration         = "hydration"
)

// RecipeInputs are the baker's-percentage inputs of a loaf.
// PrefermentedFlour is collected but does not take part in the formula.
type RecipeInputs struct {
	DoughWeight       float64 `json:"dough_weight"`
	PrefermentedFlour float64 `json:"prefermented_flour"`
	LevainPercentage  float64 `json:"levain_percentage"`
	Scale             float64 `json:"scale"`
	Hydration         float64 `json:"hydration"`
}

// RecipeOutputs are the grams to mix into the final dough.
type RecipeOutputs struct {
	Flour  int64 `json:"flour"`
	Water  int64 `json:"water"`
	Salt   int64 `json:"salt"`
	Levain int64 `json:"levain"`
}

// RecipeBreakdown holds the same quantities as RecipeOutputs before rounding.
type RecipeBreakdown struct {
	Flour  float64 `json:"flour"`
	Water  float64 `json:"water"`
	Salt   float64 `json:"salt"`
	Levain float64 `json:"levain"`
}

func DefaultRecipeInputs() RecipeInputs {
	return RecipeInputs{
		DoughWeight:       1000,
		PrefermentedFlour: 60,
		LevainPercentage:  20,
		Scale:             1.0,
		Hydration:         66,
	}
}

// Fields lists the input field names in form order.
func Fields() []string {
	return []string{
		FieldDoughWeight,
		FieldPrefermentedFlour,
		FieldLevainPercentage,
		FieldHydration,
		FieldScale,
	}
}

// Field returns the value of the named field.
func (in RecipeInputs) Field(name string) (float64, error) {
	switch name {
	case FieldDoughWeight:
		return in.DoughWeight, nil
	case FieldPrefermentedFlour:
		return in.PrefermentedFlour, nil
	case FieldLevainPercentage:
		return in.LevainPercentage, nil
	case FieldScale:
		return in.Scale, nil
	case FieldHydration:
		return in.Hydration, nil
	}
	return 0, fmt.Errorf("unknown recipe field %q", name)
}

// With returns a copy of in with the named field set to value.
func (in RecipeInputs) With(name string, value float64) (RecipeInputs, error) {
	switch name {
	case FieldDoughWeight:
		in.DoughWeight = value
	case FieldPrefermentedFlour:
		in.PrefermentedFlour = value
	case FieldLevainPercentage:
		in.LevainPercentage = value
	case FieldScale:
		in.Scale = value
	case FieldHydration:
		in.Hydration = value
	default:
		return in, fmt.Errorf("unknown recipe field %q", name)
	}
	return in, nil
}
