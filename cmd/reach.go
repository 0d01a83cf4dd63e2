package cmd

import (
	"reach-estimator/feature/targeting"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reachAccount     string
	reachCountries   []string
	reachKeywords    []string
	reachConnections []string
	reachGender      string
	reachAgeClass    string
	reachValidate    bool
)

// reachCmd represents the reach command
var reachCmd = &cobra.Command{
	Use:   "reach",
	Short: "Estimate the reach of a targeting spec",
	Long: `Validates a targeting spec and asks the Graph API for its estimated reach.
Keywords are passed one per --keyword flag so that keywords may contain commas.`,
	Example: `  reach-estimator reach --country US --keyword Eminem --keyword Sting --gender female --age-class young`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap()
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		if cmd.Flags().Changed("validate-keywords") {
			d.cfg.Targeting.ValidateKeywords = reachValidate
		}

		options := targeting.Options{
			Countries:   reachCountries,
			Keywords:    targeting.StringList(reachKeywords),
			Connections: reachConnections,
			Gender:      reachGender,
			AgeClass:    reachAgeClass,
		}

		reach, err := d.service(reachAccount).Reach(cmd.Context(), "", options)
		if err != nil {
			return err
		}

		d.logger.Debug("Reach estimated", zap.Int64("users", reach.Users))
		return writeJSON(cmd.OutOrStdout(), reach)
	},
}

func init() {
	RootCmd.AddCommand(reachCmd)

	reachCmd.Flags().StringVar(&reachAccount, "account", "", "Ad account id (defaults to GRAPH_AD_ACCOUNT)")
	reachCmd.Flags().StringSliceVar(&reachCountries, "country", nil, "Country code, repeatable or comma separated")
	reachCmd.Flags().StringArrayVar(&reachKeywords, "keyword", nil, "Interest keyword, repeatable")
	reachCmd.Flags().StringSliceVar(&reachConnections, "connection", nil, "Page or app id, repeatable or comma separated")
	reachCmd.Flags().StringVar(&reachGender, "gender", "", "male or female")
	reachCmd.Flags().StringVar(&reachAgeClass, "age-class", "", "young or old")
	reachCmd.Flags().BoolVar(&reachValidate, "validate-keywords", false, "Validate every keyword before estimating")
}
