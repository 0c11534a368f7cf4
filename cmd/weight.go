package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// weightCmd represents the weight command
var weightCmd = &cobra.Command{
	Use:   "weight <id> <1-5>",
	Short: "Change a candidate's selection weight",
	Long: `Change a candidate's selection weight. Weights run from 1 (least likely)
to 5 (most likely); out-of-range values are clamped, not rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("weight must be a number: %w", err)
		}

		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		updated, err := sess.SetWeight(ctx, args[0], weight)
		if err != nil {
			return err
		}
		if !updated {
			fmt.Printf("No item with id %s, nothing changed.\n", args[0])
			return nil
		}
		item, _ := sess.Item(args[0])
		fmt.Printf("Weight for %q set to %d.\n", item.Name, item.Weight)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
}
