package fdkaac

import (
	"io"

	"github.com/pkg/errors"

	"github.com/llehouerou/go-fdkaac/wave"
)

// ErrNoAudio is returned by DecodeToWAV when the input contains no
// decodable AAC frames.
var ErrNoAudio = errors.New("fdkaac: no decodable audio in input")

// channelModeFor maps a plain channel count onto the encoder channel
// mode, 0 for counts the encoder cannot represent.
func channelModeFor(channels int) ChannelMode {
	switch channels {
	case 1, 2, 3, 4, 5, 6:
		return ChannelMode(channels)
	case 8:
		return ChannelMode7_1Front
	}
	return 0
}

// EncodeWAV reads a 16-bit PCM WAVE stream from r, encodes it with the
// given configuration and writes the AAC bitstream to w. Sample rate
// and channel mode are taken from the WAVE header when the
// corresponding config fields are zero. Returns the number of
// bitstream bytes written.
func EncodeWAV(r io.Reader, w io.Writer, cfg EncoderConfig) (int, error) {
	format, samples, err := wave.Decode(r)
	if err != nil {
		return 0, errors.Wrap(err, "reading wav input")
	}

	if cfg.SampleRate == 0 {
		cfg.SampleRate = format.SampleRate
	}
	if cfg.Channels == 0 {
		cfg.Channels = channelModeFor(format.Channels)
		if cfg.Channels == 0 {
			return 0, errors.Errorf("fdkaac: unsupported channel count %d", format.Channels)
		}
	}

	enc, err := NewEncoder(cfg)
	if err != nil {
		return 0, errors.Wrap(err, "creating encoder")
	}
	defer enc.Close()

	info, err := enc.Info()
	if err != nil {
		return 0, err
	}
	out := make([]byte, info.MaxOutBufBytes)

	written := 0
	for len(samples) > 0 {
		res, err := enc.Encode(samples, out)
		if err != nil {
			return written, errors.Wrap(err, "encoding")
		}
		if res.OutputBytes > 0 {
			if _, err := w.Write(out[:res.OutputBytes]); err != nil {
				return written, err
			}
			written += res.OutputBytes
		}
		if res.InputConsumed == 0 && res.OutputBytes == 0 {
			break
		}
		samples = samples[res.InputConsumed:]
	}

	// Drain the frames still buffered in the encoder.
	drain := make([]byte, enc.EstimateOutputSize(0))
	n, err := enc.Flush(drain)
	if err != nil {
		return written, errors.Wrap(err, "flushing encoder")
	}
	if n > 0 {
		if _, err := w.Write(drain[:n]); err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

// maxFrameSamples is the largest PCM frame libfdk-aac can produce:
// 2048 samples per channel (HE-AAC) across 8 channels.
const maxFrameSamples = 2048 * 8

// DecodeToWAV reads an AAC bitstream in the given transport format
// from r, decodes it and writes a 16-bit PCM WAVE file to w. Corrupt
// frames are concealed by the decoder rather than aborting the stream.
// Returns the number of PCM samples written.
func DecodeToWAV(r io.Reader, w io.Writer, transport Transport) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "reading aac input")
	}

	dec, err := NewDecoder(transport)
	if err != nil {
		return 0, errors.Wrap(err, "creating decoder")
	}
	defer dec.Close()

	var samples []int16
	pcm := make([]int16, maxFrameSamples)
	pos := 0

	for {
		if pos < len(data) {
			consumed, err := dec.Fill(data[pos:])
			if err != nil {
				return 0, errors.Wrap(err, "filling decoder")
			}
			pos += consumed
		}

		err := dec.DecodeFrame(pcm, 0)
		if derr, ok := err.(DecoderError); ok {
			if derr == DecErrNotEnoughBits || derr.IsSyncError() {
				if pos >= len(data) {
					break
				}
				continue
			}
			// Decode-range errors leave a concealed frame in pcm; keep
			// it and carry on rather than dropping everything decoded
			// so far.
			if !derr.IsDecodeError() {
				return 0, errors.Wrap(err, "decoding frame")
			}
		} else if err != nil {
			return 0, err
		}

		info := dec.StreamInfo()
		n := info.FrameSize * info.NumChannels
		if n > 0 && n <= len(pcm) {
			samples = append(samples, pcm[:n]...)
		}
	}

	if len(samples) == 0 {
		return 0, ErrNoAudio
	}

	info := dec.StreamInfo()
	format := wave.Format{SampleRate: info.SampleRate, Channels: info.NumChannels}
	if err := wave.Encode(w, format, samples); err != nil {
		return 0, errors.Wrap(err, "writing wav output")
	}
	return len(samples), nil
}
