package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/dealerdesk/dealerdesk_backend/cmd/http"
	systemcmd "github.com/dealerdesk/dealerdesk_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "dealerdesk",
	Short: "DealerDesk BDC notification and offline-cache service.",
	Long: `DealerDesk's notification subsystem for auto dealership BDC teams.
It delivers lead, appointment, inventory and message alerts across browser,
push, email and SMS channels, and runs the offline caching gateway that keeps
the BDC dashboard usable on flaky showroom Wi-Fi.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
