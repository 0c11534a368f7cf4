package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lunch candidates, most recently added first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		items := sess.Items()
		if len(items) == 0 {
			fmt.Println("The catalog is empty. Add something with `lunchpick add`.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tWEIGHT\tTAGS")
		for _, it := range items {
			price := "-"
			if it.Price != nil {
				price = fmt.Sprintf("%d", *it.Price)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", it.ID, it.Name, price, it.Weight, strings.Join(it.Tags, ","))
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
