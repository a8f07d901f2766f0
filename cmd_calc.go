package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"sourdough-calculator/domain"
	"sourdough-calculator/repository"
	"sourdough-calculator/service"
	"sourdough-calculator/tui"
)

var (
	calcInputs = domain.DefaultRecipeInputs()
	calcJSON   bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a recipe once and print it",
	Long: `Calculates grams of flour, water, salt and levain.

Example:
  sourdough calc --dough-weight 1800 --hydration 72 --levain 15`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	f := calcCmd.Flags()
	f.Float64Var(&calcInputs.DoughWeight, "dough-weight", calcInputs.DoughWeight, "total dough weight in grams")
	f.Float64Var(&calcInputs.PrefermentedFlour, "prefermented-flour", calcInputs.PrefermentedFlour, "pre-fermented flour in grams")
	f.Float64Var(&calcInputs.LevainPercentage, "levain", calcInputs.LevainPercentage, "levain as a percentage of flour")
	f.Float64Var(&calcInputs.Hydration, "hydration", calcInputs.Hydration, "water as a percentage of flour")
	f.Float64Var(&calcInputs.Scale, "scale", calcInputs.Scale, "multiplier applied to the whole recipe")
	f.BoolVar(&calcJSON, "json", false, "print JSON instead of a table")
}

func runCalc(cmd *cobra.Command, args []string) error {
	recipeService := service.NewRecipeService(repository.NewMemoryCache(cfg.CacheTTL, cfg.CacheMax), logger)

	result, err := recipeService.CalculateRecipe(cmd.Context(), calcInputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if calcJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Inputs domain.RecipeInputs  `json:"inputs"`
			Recipe domain.RecipeOutputs `json:"recipe"`
		}{calcInputs, result})
	}

	_, err = fmt.Fprintln(out, tui.RenderRecipe(result))
	return err
}
