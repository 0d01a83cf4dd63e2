package cmd

import (
	"github.com/spf13/cobra"
)

// keywordsCmd represents the keywords command
var keywordsCmd = &cobra.Command{
	Use:   "keywords <keyword>...",
	Short: "Check whether keywords can be targeted",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap()
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		results := d.service("").ValidateKeywords(cmd.Context(), args)
		return writeJSON(cmd.OutOrStdout(), results)
	},
}

func init() {
	RootCmd.AddCommand(keywordsCmd)
}
