package domain

// CalculatorState is what a calculator surface holds between user actions:
// the inputs as currently edited and the last calculated recipe.
// Recipe stays nil until the first successful calculation and is only
// replaced by the next one; editing Inputs never touches it.
type CalculatorState struct {
	Inputs RecipeInputs
	Recipe *RecipeOutputs
}

func NewCalculatorState() CalculatorState {
	return CalculatorState{Inputs: DefaultRecipeInputs()}
}

// WithInputs returns a copy of s carrying in. The recipe is left as is.
func (s CalculatorState) WithInputs(in RecipeInputs) CalculatorState {
	s.Inputs = in
	return s
}
