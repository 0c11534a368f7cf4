package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a lunch candidate from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		item, found := sess.Item(args[0])
		if !found {
			fmt.Printf("No item with id %s, nothing removed.\n", args[0])
			return nil
		}
		if _, err := sess.Remove(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %q.\n", item.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
