package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matheuskafuri/headlines/internal/dashboard"
	"github.com/spf13/cobra"
)

var (
	flagQuery string
	flagJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the current headlines",
	Long: `Fetch the headlines once and print them as cards.

A failed fetch prints a warning on stderr and an empty list; the exit code stays 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		view := dashboard.NewView()
		view.Load(context.Background(), e.client, e.logger)
		view.SetQuery(flagQuery)

		if o := view.Outcome(); o.Failed() {
			fmt.Fprintf(cmd.ErrOrStderr(), "[warn] could not reach NewsAPI: %v\n", o.Err)
		}

		cards := dashboard.Cards(view.Filtered())
		if flagJSON {
			return printJSON(cmd.OutOrStdout(), cards)
		}
		printCards(cmd.OutOrStdout(), cards)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "only show articles whose title or author contains this text")
	listCmd.Flags().BoolVar(&flagJSON, "json", false, "print JSON instead of text")
}

func printCards(w io.Writer, cards []dashboard.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}
	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, c.Title)
		fmt.Fprintf(w, "  %s\n", c.Description)
		fmt.Fprintf(w, "  Author: %s · Source: %s\n", c.Author, c.Source)
		fmt.Fprintf(w, "  Image: %s\n", c.ImageURL)
		fmt.Fprintf(w, "  %s\n", c.URL)
	}
}

func printJSON(w io.Writer, cards []dashboard.Card) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cards)
}
