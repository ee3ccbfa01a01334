package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	fdkaac "github.com/llehouerou/go-fdkaac"
)

var decodeFlags struct {
	latm bool
}

var decodeCmd = &cobra.Command{
	Use:   "decode <input.aac> <output.wav>",
	Short: "Decode an ADTS AAC stream to a 16-bit PCM WAVE file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer in.Close()

		out, err := os.Create(args[1])
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer out.Close()

		transport := fdkaac.TransportADTS
		if decodeFlags.latm {
			transport = fdkaac.TransportLOAS
		}

		n, err := fdkaac.DecodeToWAV(in, out, transport)
		if err != nil {
			return err
		}
		cmd.Printf("wrote %d samples to %s\n", n, args[1])
		return nil
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeFlags.latm, "loas", false,
		"input is LOAS/LATM instead of ADTS")
	rootCmd.AddCommand(decodeCmd)
}
