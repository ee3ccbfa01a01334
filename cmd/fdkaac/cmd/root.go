package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fdkaac",
	Short: "AAC encode/decode tool built on libfdk-aac",
	Long: `fdkaac converts between WAVE files and AAC streams using the
Fraunhofer FDK AAC codec library, and inspects ADTS streams.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
