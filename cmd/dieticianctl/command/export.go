package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/dieticians"
	"github.com/tidepool-org/dieticians/dieticians/report"
)

var output string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export dieticians to a spreadsheet",
	Long:  "The export command writes all dieticians to an xlsx file. Passwords are not exported.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service dieticians.Service, logger *zap.SugaredLogger) error {
			return exportDieticians(cmd.Context(), service, logger, output)
		})
	},
}

func exportDieticians(ctx context.Context, service dieticians.Service, logger *zap.SugaredLogger, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	list, err := service.List(ctx)
	if err != nil {
		return err
	}

	file, err := report.NewReport(list).Generate()
	if err != nil {
		return fmt.Errorf("unable to generate report: %w", err)
	}
	if err := file.Save(path); err != nil {
		return fmt.Errorf("unable to save report: %w", err)
	}

	logger.Infow("exported dieticians", "count", len(list), "output", path)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&output, "output", "o", "dieticians.xlsx", "Output file")
	rootCmd.AddCommand(exportCmd)
}
