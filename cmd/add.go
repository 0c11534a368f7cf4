package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hungryops/lunchpick/pkg/catalog"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a lunch candidate to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priceRaw, _ := cmd.Flags().GetString("price")
		tagsRaw, _ := cmd.Flags().GetString("tags")
		weight, _ := cmd.Flags().GetInt("weight")

		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		item, added, err := sess.Add(ctx, args[0], catalog.ParsePrice(priceRaw), catalog.SplitTags(tagsRaw))
		if err != nil {
			return err
		}
		if !added {
			fmt.Println("Nothing added: the name must not be empty.")
			return nil
		}
		if cmd.Flags().Changed("weight") {
			if _, err := sess.SetWeight(ctx, item.ID, weight); err != nil {
				return err
			}
			item.Weight = catalog.ClampWeight(weight)
		}

		fmt.Printf("Added %q (id %s, weight %d)\n", item.Name, item.ID, item.Weight)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("price", "p", "", "Price in minor currency units (non-digits are stripped, empty means unknown)")
	addCmd.Flags().StringP("tags", "t", "", "Comma-separated tags (example: japanese,noodles)")
	addCmd.Flags().IntP("weight", "w", catalog.DefaultWeight, "Selection weight, 1 (least likely) to 5 (most likely)")
}
