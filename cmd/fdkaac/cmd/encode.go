package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	fdkaac "github.com/llehouerou/go-fdkaac"
)

var encodeFlags struct {
	bitrate     int
	vbr         int
	heAAC       bool
	afterburner bool
}

var encodeCmd = &cobra.Command{
	Use:   "encode <input.wav> <output.aac>",
	Short: "Encode a 16-bit PCM WAVE file to an ADTS AAC stream",
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

		cfg := fdkaac.EncoderConfig{
			Bitrate:     encodeFlags.bitrate,
			BitrateMode: fdkaac.BitrateMode(encodeFlags.vbr),
			Transport:   fdkaac.TransportADTS,
			Afterburner: encodeFlags.afterburner,
		}
		if encodeFlags.heAAC {
			cfg.ObjectType = fdkaac.AOTSBR
		}

		n, err := fdkaac.EncodeWAV(in, out, cfg)
		if err != nil {
			return err
		}
		cmd.Printf("wrote %d bytes to %s\n", n, args[1])
		return nil
	},
}

func init() {
	encodeCmd.Flags().IntVarP(&encodeFlags.bitrate, "bitrate", "b", 128000,
		"target bitrate in bits per second (CBR)")
	encodeCmd.Flags().IntVar(&encodeFlags.vbr, "vbr", 0,
		"VBR mode 1-5, 0 for CBR")
	encodeCmd.Flags().BoolVar(&encodeFlags.heAAC, "he", false,
		"encode HE-AAC (AAC-LC with SBR)")
	encodeCmd.Flags().BoolVar(&encodeFlags.afterburner, "afterburner", false,
		"enable the encoder's quality-over-speed mode")
	rootCmd.AddCommand(encodeCmd)
}
