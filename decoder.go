package fdkaac

import (
	"github.com/llehouerou/go-fdkaac/internal/sys"
)

// StreamInfo describes the stream the decoder is currently decoding.
// It is the translation of the scalar fields of the native CStreamInfo,
// valid after the first successful DecodeFrame.
type StreamInfo struct {
	// SampleRate is the output sampling frequency in Hz, after any SBR
	// upsampling.
	SampleRate int

	// FrameSize is the number of output samples per channel in the
	// most recent frame.
	FrameSize int

	// NumChannels is the number of output channels.
	NumChannels int

	// AACSampleRate is the sampling frequency signaled in the
	// bitstream, before SBR.
	AACSampleRate int

	// ObjectType is the audio object type of the stream.
	ObjectType AudioObjectType

	// ExtObjectType is the extension object type (SBR/PS), if any.
	ExtObjectType AudioObjectType

	// ChannelConfig is the MPEG-4 channel configuration value.
	ChannelConfig int

	// Bitrate is the stream bitrate in bits per second, when the
	// transport carries it (ADTS streams report an estimate).
	Bitrate int

	// OutputDelay is the decoder output delay in samples per channel.
	OutputDelay int

	// Statistics accumulated across the life of the handle.
	NumTotalBytes      int
	NumBadBytes        int
	NumTotalAccessUnit int
	NumBadAccessUnits  int
}

// DecodeFlags modify a single DecodeFrame call. Values match the native
// AACDEC_* flag bits.
type DecodeFlags uint

// Decode flags.
const (
	// DecodeConceal produces a concealed frame instead of consuming
	// bitstream input.
	DecodeConceal DecodeFlags = 1

	// DecodeFlush drains remaining output without new input.
	DecodeFlush DecodeFlags = 2

	// DecodeIntr signals a stream discontinuity to the decoder.
	DecodeIntr DecodeFlags = 4

	// DecodeClearHistory resets the decoder's internal state.
	DecodeClearHistory DecodeFlags = 8
)

// Decoder wraps a native AAC decoder handle.
//
// The decoder works pull-style: feed bitstream bytes with Fill, then
// call DecodeFrame until it reports DecErrNotEnoughBits, then feed
// more. A Decoder is not safe for concurrent use; confine each instance
// to one goroutine at a time.
type Decoder struct {
	handle *sys.DecoderHandle
	closed bool
}

// NewDecoder allocates a native decoder for the given transport format.
//
// For TransportRaw the stream parameters must be supplied with
// ConfigRaw before decoding; self-describing transports (ADTS, LOAS)
// configure themselves from the bitstream.
func NewDecoder(transport Transport) (*Decoder, error) {
	h := sys.DecOpen(int(transport), 1)
	if h == nil {
		return nil, DecErrOutOfMemory
	}
	return &Decoder{handle: h}, nil
}

// ConfigRaw pushes an out-of-band AudioSpecificConfig (as produced by
// EncoderInfo.ASC or found in an MP4 esds box) to the decoder. Required
// for TransportRaw streams.
func (d *Decoder) ConfigRaw(asc []byte) error {
	if d.closed {
		return ErrDecoderClosed
	}
	if asc == nil {
		return ErrNilBuffer
	}
	return decErr(int(sys.DecConfigRaw(d.handle, asc)))
}

// SetMinOutputChannels sets the minimum number of output channels;
// mono streams are upmixed when a larger minimum is set.
func (d *Decoder) SetMinOutputChannels(n int) error {
	if d.closed {
		return ErrDecoderClosed
	}
	return decErr(int(sys.DecSetParam(d.handle, sys.DecParamPCMMinOutputChannels, n)))
}

// SetMaxOutputChannels sets the maximum number of output channels;
// multichannel streams are downmixed when a smaller maximum is set.
func (d *Decoder) SetMaxOutputChannels(n int) error {
	if d.closed {
		return ErrDecoderClosed
	}
	return decErr(int(sys.DecSetParam(d.handle, sys.DecParamPCMMaxOutputChannels, n)))
}

// Fill feeds bitstream bytes into the decoder's internal input buffer
// and returns the number of bytes consumed. A short consume count means
// the internal buffer is full; decode some frames and feed the
// remainder again.
func (d *Decoder) Fill(data []byte) (int, error) {
	if d.closed {
		return 0, ErrDecoderClosed
	}
	if data == nil {
		return 0, ErrNilBuffer
	}
	consumed, code := sys.DecFill(d.handle, data)
	if !code.OK() {
		return consumed, decErr(int(code))
	}
	return consumed, nil
}

// FreeBytes returns the free space in the decoder's internal input
// buffer, the amount a following Fill can consume.
func (d *Decoder) FreeBytes() (int, error) {
	if d.closed {
		return 0, ErrDecoderClosed
	}
	free, code := sys.DecGetFreeBytes(d.handle)
	if !code.OK() {
		return 0, decErr(int(code))
	}
	return int(free), nil
}

// DecodeFrame decodes one access unit from the filled input into pcm as
// interleaved 16-bit samples. The pcm buffer must hold at least
// FrameSize*NumChannels samples for the stream; DecodedFrameSize
// returns that product once stream info is available.
//
// DecErrNotEnoughBits indicates the input buffer ran dry, not a failure:
// Fill more data and call DecodeFrame again.
func (d *Decoder) DecodeFrame(pcm []int16, flags DecodeFlags) error {
	if d.closed {
		return ErrDecoderClosed
	}
	if pcm == nil {
		return ErrNilBuffer
	}
	return decErr(int(sys.DecDecodeFrame(d.handle, pcm, uint(flags))))
}

// StreamInfo returns the current stream description. Before the first
// decoded frame the fields are zero.
func (d *Decoder) StreamInfo() StreamInfo {
	if d.closed {
		return StreamInfo{}
	}
	si := sys.DecStreamInfo(d.handle)
	return StreamInfo{
		SampleRate:         si.SampleRate,
		FrameSize:          si.FrameSize,
		NumChannels:        si.NumChannels,
		AACSampleRate:      si.AACSampleRate,
		ObjectType:         AudioObjectType(si.AOT),
		ExtObjectType:      AudioObjectType(si.ExtAOT),
		ChannelConfig:      si.ChannelConfig,
		Bitrate:            si.Bitrate,
		OutputDelay:        int(si.OutputDelay),
		NumTotalBytes:      si.NumTotalBytes,
		NumBadBytes:        si.NumBadBytes,
		NumTotalAccessUnit: si.NumTotalAccessUnit,
		NumBadAccessUnits:  si.NumBadAccessUnits,
	}
}

// DecodedFrameSize returns the total number of samples (frame size
// times channels) one DecodeFrame call produces for the current stream,
// or 0 before the first frame.
func (d *Decoder) DecodedFrameSize() int {
	info := d.StreamInfo()
	return info.FrameSize * info.NumChannels
}

// Close releases the native decoder handle. It is idempotent; after the
// first call every other method returns ErrDecoderClosed.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	sys.DecClose(d.handle)
	return nil
}
