package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the pick history, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		entries := sess.History()
		if len(entries) == 0 {
			fmt.Println("No picks recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "WHEN\tNAME")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Name)
		}
		w.Flush()

		return nil
	},
}

// historyClearCmd represents the history clear command
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole pick history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if err := sess.ClearHistory(ctx); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)
}
