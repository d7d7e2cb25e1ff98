package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/ortholab/depisto_backend/cmd/http"
	systemcmd "github.com/ortholab/depisto_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "depisto",
	Short: "Dépisto developmental screening platform for speech therapists.",
	Long: `Dépisto is the backend of a developmental screening platform for speech
therapists. Practitioners prescribe the IDE questionnaire, guardians fill it
in online, and the platform scores, classifies and reports the results.`,
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
