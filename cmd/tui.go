package cmd

import (
	"github.com/matheuskafuri/headlines/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	return tui.Run(tui.RunOpts{
		Fetcher: e.client,
		Logger:  e.logger,
	})
}
