package command

import (
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/tidepool-org/dieticians/api"
)

var logLevel string

// Run builds the providers of the server and calls f once with the arguments it
// requests. Values which only a command knows, like the path of an export, are supplied
// through opts.
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, api.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

var rootCmd = &cobra.Command{
	Use:   "dieticianctl",
	Short: "List and export the dieticians of the service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The flag takes precedence over LOG_LEVEL from the environment or .env
		return os.Setenv("LOG_LEVEL", logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "error", "level of the service logs written to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
