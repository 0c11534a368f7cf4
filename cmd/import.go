package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hungryops/lunchpick/internal/utils"
	"github.com/hungryops/lunchpick/pkg/catalog"
	"github.com/hungryops/lunchpick/pkg/importer"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file-or-url>",
	Short: "Bulk-add candidates from a JSON document or an HTML page",
	Long: `Bulk-add candidates from a JSON document or an HTML page, read from a
local file or fetched over http(s).

JSON sources may be a top-level array or an object with an "items" array;
each element contributes its "name" (or "title"), "price" and "tags".
With --selector the source is treated as HTML instead and every element
matched by the CSS selector becomes a candidate named after its text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selector, _ := cmd.Flags().GetString("selector")
		tagsRaw, _ := cmd.Flags().GetString("tags")

		data, err := importer.Read(args[0])
		if err != nil {
			return fmt.Errorf("could not read import source: %w", err)
		}

		var candidates []importer.Candidate
		if selector != "" {
			candidates, err = importer.ParseHTML(data, selector)
			if err != nil {
				return fmt.Errorf("could not parse HTML source: %w", err)
			}
		} else {
			candidates = importer.ParseJSON(data)
		}
		if len(candidates) == 0 {
			fmt.Println("No candidates found in the source.")
			return nil
		}

		extraTags := catalog.SplitTags(tagsRaw)

		ctx := context.Background()
		sess, closer, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closer()

		added := 0
		for _, c := range candidates {
			tags := append(append([]string{}, c.Tags...), extraTags...)
			_, ok, err := sess.Add(ctx, c.Name, c.Price, tags)
			if err != nil {
				return err
			}
			if !ok {
				utils.Log.Debugf("Skipped candidate with empty name from %s", args[0])
				continue
			}
			added++
		}
		fmt.Printf("Imported %d of %d candidates.\n", added, len(candidates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("selector", "s", "", "CSS selector for HTML sources (example: 'ul.menu li')")
	importCmd.Flags().StringP("tags", "t", "", "Extra comma-separated tags applied to every imported candidate")
}
