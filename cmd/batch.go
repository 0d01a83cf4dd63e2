package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"reach-estimator/feature/targeting"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchAccount     string
	batchFile        string
	batchConcurrency int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Estimate the reach of many targeting specs",
	Long: `Reads a JSON array of targeting specs and estimates their reach with one Graph
batch call per 50 specs. Results are printed in input order; failed items carry an error.`,
	Example: `  reach-estimator batch --file specs.json --concurrency 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		options, err := readOptionsFile(batchFile)
		if err != nil {
			return err
		}

		d, err := bootstrap()
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		if cmd.Flags().Changed("concurrency") {
			d.cfg.Targeting.Concurrency = batchConcurrency
		}

		results, err := d.service(batchAccount).BatchReach(cmd.Context(), "", options)
		if err != nil {
			return err
		}

		d.logger.Debug("Batch finished", zap.Duration("execution_time", time.Since(startTime)))
		return writeJSON(cmd.OutOrStdout(), results)
	},
}

// readOptionsFile decodes a JSON array of targeting options.
func readOptionsFile(path string) ([]targeting.Options, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var options []targeting.Options
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return options, nil
}

func init() {
	RootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchAccount, "account", "", "Ad account id (defaults to GRAPH_AD_ACCOUNT)")
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "JSON file with an array of targeting specs")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 1, "Number of batch calls in flight")
}
