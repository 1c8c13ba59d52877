package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/dieticians/dieticians"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List dieticians",
	Long:  "The list command prints the id, email and name of every dietician",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service dieticians.Service) error {
			return listDieticians(cmd.Context(), service, os.Stdout)
		})
	},
}

func listDieticians(ctx context.Context, service dieticians.Service, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	list, err := service.List(ctx)
	if err != nil {
		return err
	}

	for _, d := range list {
		if _, err := fmt.Fprintf(out, "%s %s %s %s\n", d.Id, d.Email, d.FirstName, d.LastName); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "Found %v dieticians\n", len(list))
	return err
}

func init() {
	rootCmd.AddCommand(listCmd)
}
