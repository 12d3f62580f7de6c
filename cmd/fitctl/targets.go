package main

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/nutrition"
	"github.com/spf13/cobra"
)

var targetsIn nutrition.Input

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Compute daily calorie, macro and step targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if targetsIn.Age <= 0 || targetsIn.HeightCm <= 0 || targetsIn.WeightKg <= 0 {
			return fmt.Errorf("--age, --height and --weight must be positive")
		}
		t := nutrition.ComputeTargets(targetsIn)
		fmt.Fprintf(cmd.OutOrStdout(), "BMR: %.2f\nTDEE: %.2f\nCalories: %d\nProtein: %dg\nCarbs: %dg\nFats: %dg\nSteps: %d\n",
			nutrition.BMR(targetsIn), nutrition.TDEE(targetsIn), t.Calories, t.Protein, t.Carbs, t.Fats, t.Steps)
		return nil
	},
}

func init() {
	targetsCmd.Flags().IntVar(&targetsIn.Age, "age", 0, "Age in years")
	targetsCmd.Flags().StringVar(&targetsIn.Gender, "gender", "Male", "Male or Female")
	targetsCmd.Flags().Float64Var(&targetsIn.HeightCm, "height", 0, "Height in cm")
	targetsCmd.Flags().Float64Var(&targetsIn.WeightKg, "weight", 0, "Weight in kg")
	targetsCmd.Flags().StringVar(&targetsIn.ActivityLevel, "activity", nutrition.ActivitySedentary, "Sedentary, Lightly Active, Moderately Active or Very Active")
	targetsCmd.Flags().StringVar(&targetsIn.Goal, "goal", nutrition.GoalMaintenance, "Fat Loss, Muscle Gain, Recomposition or Maintenance")
	rootCmd.AddCommand(targetsCmd)
}
