package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics about the catalog and pick history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		stats := sess.Stats()

		fmt.Printf("Candidates:      %d\n", stats.Items)
		fmt.Printf("Total weight:    %d\n", stats.TotalWeight)
		fmt.Printf("History entries: %d\n", stats.HistoryLen)

		if len(stats.Tags) == 0 {
			return nil
		}
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "TAG\tITEMS\t")
		for _, tc := range stats.Tags {
			fmt.Fprintf(w, "%s\t%d\t\n", tc.Tag, tc.Count)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
