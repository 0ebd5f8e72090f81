package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"vlrdata-backend/lib/restyutil"
	"vlrdata-backend/lib/telemetry"
	"vlrdata-backend/services/vlr"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	verbose  *bool
	baseUrl  *string
	dumpHttp *bool
)

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging.")
	baseUrl = rootCmd.PersistentFlags().String("base-url", "", "Override the site base url.")
	dumpHttp = rootCmd.PersistentFlags().Bool("dump-http", false, "Dump every http exchange to .dev/resty/vlr for selector debugging.")
}

var rootCmd = &cobra.Command{
	Use:   "vlr-cli",
	Short: "vlr-cli is a CLI for scraping and validating esports match extraction.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func newService() vlr.Service {
	service, err := vlr.NewService(vlr.Options{BaseUrl: *baseUrl})
	if err != nil {
		fatal("failed to initialize client", err)
	}
	if *dumpHttp {
		service.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/vlr"))
	}
	return service
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
