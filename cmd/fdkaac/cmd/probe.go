package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/llehouerou/go-fdkaac/adts"
)

var probeCmd = &cobra.Command{
	Use:   "probe <input.aac>",
	Short: "Print ADTS stream information without decoding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "reading input")
		}

		frames, err := adts.Split(data)
		if err != nil && len(frames) == 0 {
			return errors.Wrap(err, "parsing adts")
		}

		h := frames[0].Header
		payload := 0
		for _, f := range frames {
			payload += f.Header.PayloadLength()
		}

		cmd.Printf("frames:         %d\n", len(frames))
		cmd.Printf("object type:    %d\n", h.ObjectType())
		cmd.Printf("sample rate:    %d Hz\n", h.SampleRate())
		cmd.Printf("channels:       %d\n", h.Channels())
		cmd.Printf("payload bytes:  %d\n", payload)
		if h.SampleRate() > 0 {
			// The ADTS header does not carry the frame size; HE-AAC
			// signals SBR in-band and doubles the output to 2048
			// samples per frame, which the header cannot reveal.
			seconds := float64(len(frames)) * 1024 / float64(h.SampleRate())
			cmd.Printf("duration:       %.2fs (assuming 1024 samples/frame; double for HE-AAC)\n", seconds)
			if seconds > 0 {
				cmd.Printf("mean bitrate:   %.0f bit/s\n", float64(payload)*8/seconds)
			}
		}
		if err != nil {
			cmd.PrintErrf("warning: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
