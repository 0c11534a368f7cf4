package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hungryops/lunchpick/pkg/catalog"
	"github.com/hungryops/lunchpick/pkg/picker"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick today's lunch from the eligible candidates",
	Long: `Pick today's lunch. Candidates over the budget ceiling, carrying an
excluded tag, or eaten within the avoid-recent window are filtered out first;
the draw over the remainder is weighted by each item's 1-5 weight.

Flags override the constraints.* values from the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		constraints := constraintsFromFlags(cmd)
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if dryRun {
			eligible := sess.Eligible(constraints)
			if len(eligible) == 0 {
				fmt.Println("No candidate matches the current constraints.")
				return nil
			}
			fmt.Println("Eligible candidates:")
			for _, it := range eligible {
				fmt.Printf("  %s (weight %d)\n", it.Name, it.Weight)
			}
			return nil
		}

		item, err := sess.Pick(ctx, constraints)
		if errors.Is(err, picker.ErrNoCandidates) {
			fmt.Println("No candidate matches the current constraints. Nothing was recorded.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Today's lunch: %s", item.Name)
		if len(item.Tags) > 0 {
			fmt.Printf(" (%s)", strings.Join(item.Tags, ", "))
		}
		fmt.Println()
		return nil
	},
}

// constraintsFromFlags merges pick flags over the config defaults.
func constraintsFromFlags(cmd *cobra.Command) picker.Constraints {
	budget := viper.GetString("constraints.budget")
	if cmd.Flags().Changed("budget") {
		budget, _ = cmd.Flags().GetString("budget")
	}
	excluded := viper.GetString("constraints.excluded_tags")
	if cmd.Flags().Changed("exclude-tags") {
		excluded, _ = cmd.Flags().GetString("exclude-tags")
	}
	avoidRecent := viper.GetBool("constraints.avoid_recent")
	if cmd.Flags().Changed("avoid-recent") {
		avoidRecent, _ = cmd.Flags().GetBool("avoid-recent")
	}
	windowDays := viper.GetInt("constraints.window_days")
	if cmd.Flags().Changed("window-days") {
		windowDays, _ = cmd.Flags().GetInt("window-days")
	}

	return picker.Constraints{
		Budget:       catalog.ParsePrice(budget),
		ExcludedTags: catalog.SplitTags(excluded),
		AvoidRecent:  avoidRecent,
		WindowDays:   windowDays,
	}
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().StringP("budget", "b", "", "Budget ceiling in minor currency units (empty means no ceiling)")
	pickCmd.Flags().StringP("exclude-tags", "x", "", "Comma-separated tags to exclude")
	pickCmd.Flags().BoolP("avoid-recent", "a", false, "Skip candidates picked within the recent window")
	pickCmd.Flags().IntP("window-days", "d", 7, "Recent window in days (0-14)")
	pickCmd.Flags().Bool("dry-run", false, "Show the eligible candidates without drawing or recording")
}
