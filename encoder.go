package fdkaac

import (
	"github.com/llehouerou/go-fdkaac/internal/sys"
)

// EncoderConfig holds the parameters applied when an encoder handle is
// created. SampleRate, Channels and either Bitrate or BitrateMode are
// required; the zero values of the remaining fields select the
// library's defaults.
type EncoderConfig struct {
	// SampleRate is the input sampling frequency in Hz. Must be one of
	// the MPEG-4 table rates (see ValidSampleRate).
	SampleRate int

	// Channels is the input channel configuration.
	Channels ChannelMode

	// Bitrate is the target bitrate in bits per second. Used only in
	// CBR mode (BitrateMode == BitrateModeCBR).
	Bitrate int

	// BitrateMode selects CBR or one of the five VBR modes.
	BitrateMode BitrateMode

	// Transport selects the output packaging. The zero value is
	// TransportRaw; use TransportADTS for a self-describing stream.
	Transport Transport

	// ObjectType selects the AAC profile. The zero value selects
	// AAC-LC.
	ObjectType AudioObjectType

	// Afterburner enables the library's quality-over-speed mode.
	Afterburner bool
}

// EncoderInfo describes the configured encoder instance. It is the
// translation of the native AACENC_InfoStruct.
type EncoderInfo struct {
	// MaxOutBufBytes is the worst-case size in bytes of one encoded
	// frame. Output buffers passed to Encode should be at least this
	// large to guarantee a frame always fits.
	MaxOutBufBytes int

	// InputChannels is the number of input channels the encoder
	// expects per frame.
	InputChannels int

	// FrameLength is the number of input samples consumed per channel
	// for each produced frame (1024 for AAC-LC).
	FrameLength int

	// Delay is the codec delay in samples per channel.
	Delay int

	// DelayCore is the codec delay excluding the SBR decoder portion,
	// as needed for gapless playback edit lists.
	DelayCore int

	// ASC is the AudioSpecificConfig (or StreamMuxConfig, depending on
	// transport) describing the stream. For TransportRaw this is what
	// a decoder needs for Decoder.ConfigRaw.
	ASC []byte
}

// EncodeInfo reports the progress of a single Encode call.
type EncodeInfo struct {
	// InputConsumed is the number of input samples (across all
	// channels) consumed from the PCM buffer.
	InputConsumed int

	// OutputBytes is the number of bytes written to the output buffer.
	// Zero while the encoder is still buffering input.
	OutputBytes int
}

// Encoder wraps a native AAC encoder handle.
//
// An Encoder is not safe for concurrent use; confine each instance to
// one goroutine at a time. Close releases the native handle and must be
// called exactly when the encoder is no longer needed; it is safe to
// call more than once.
type Encoder struct {
	handle *sys.EncoderHandle
	config EncoderConfig
	closed bool
}

// encoderMaxChannels is passed to the native allocator. Allocating for
// the full channel count the build supports keeps handle allocation
// independent of the configured mode.
const encoderMaxChannels = 8

// NewEncoder allocates and configures a native encoder handle.
//
// The parameter sequence follows the library's documented setup order:
// open, set AOT, bitrate, sample rate, transport, SBR and channel
// configuration, then an argument-less encode call that commits the
// configuration. Any native failure is returned as an EncoderError and
// the half-configured handle is released.
func NewEncoder(cfg EncoderConfig) (*Encoder, error) {
	h, code := sys.EncOpen(0, encoderMaxChannels)
	if !code.OK() {
		return nil, encErr(int(code))
	}

	if err := configureEncoder(h, cfg); err != nil {
		sys.EncClose(h)
		return nil, err
	}

	return &Encoder{handle: h, config: cfg}, nil
}

func configureEncoder(h *sys.EncoderHandle, cfg EncoderConfig) error {
	aot := cfg.ObjectType
	if aot == 0 {
		aot = AOTAACLC
	}

	set := func(p sys.EncParam, v uint) error {
		return encErr(int(sys.EncSetParam(h, p, v)))
	}

	if err := set(sys.EncParamAOT, uint(aot)); err != nil {
		return err
	}
	if cfg.BitrateMode == BitrateModeCBR {
		if err := set(sys.EncParamBitrate, uint(cfg.Bitrate)); err != nil {
			return err
		}
	}
	if err := set(sys.EncParamBitrateMode, uint(cfg.BitrateMode)); err != nil {
		return err
	}
	if err := set(sys.EncParamSampleRate, uint(cfg.SampleRate)); err != nil {
		return err
	}
	if err := set(sys.EncParamTransmux, uint(cfg.Transport)); err != nil {
		return err
	}
	// SBR is implied by the object type; leave the explicit mode off
	// unless an HE profile asked for it.
	sbr := uint(0)
	if aot == AOTSBR || aot == AOTPS || aot == AOTMP2SBR {
		sbr = 1
	}
	if err := set(sys.EncParamSBRMode, sbr); err != nil {
		return err
	}
	if err := set(sys.EncParamChannelMode, uint(cfg.Channels)); err != nil {
		return err
	}
	if cfg.Afterburner {
		if err := set(sys.EncParamAfterburner, 1); err != nil {
			return err
		}
	}

	// Commit the configuration.
	return encErr(int(sys.EncEncodeInit(h)))
}

// Config returns the configuration the encoder was created with.
func (e *Encoder) Config() EncoderConfig {
	return e.config
}

// Info returns the configured stream properties, including the frame
// length, codec delay and the AudioSpecificConfig.
func (e *Encoder) Info() (EncoderInfo, error) {
	if e.closed {
		return EncoderInfo{}, ErrEncoderClosed
	}
	info, code := sys.EncInfoGet(e.handle)
	if !code.OK() {
		return EncoderInfo{}, encErr(int(code))
	}
	return EncoderInfo{
		MaxOutBufBytes: int(info.MaxOutBufBytes),
		InputChannels:  int(info.InputChannels),
		FrameLength:    int(info.FrameLength),
		Delay:          int(info.NDelay),
		DelayCore:      int(info.NDelayCore),
		ASC:            info.ConfBuf,
	}, nil
}

// Encode feeds interleaved 16-bit PCM samples to the encoder and writes
// any produced bitstream bytes to out. The encoder buffers input
// internally: a call may consume samples without producing output, or
// produce a frame encoded from earlier input.
//
// Callers should size out using Info().MaxOutBufBytes or
// EstimateOutputSize, and continue calling Encode with the unconsumed
// remainder of pcm until all input is consumed.
func (e *Encoder) Encode(pcm []int16, out []byte) (EncodeInfo, error) {
	if e.closed {
		return EncodeInfo{}, ErrEncoderClosed
	}
	if pcm == nil || out == nil {
		return EncodeInfo{}, ErrNilBuffer
	}

	args, code := sys.EncEncode(e.handle, pcm, out, len(pcm))
	if !code.OK() {
		return EncodeInfo{}, encErr(int(code))
	}
	return EncodeInfo{
		InputConsumed: args.NumInSamples,
		OutputBytes:   args.NumOutBytes,
	}, nil
}

// Flush drains the frames still buffered inside the encoder into out
// and returns the number of bytes written. After Flush returns, the
// encoder has emitted all audio that was fed to it; feeding more input
// afterwards is not supported by the native library.
func (e *Encoder) Flush(out []byte) (int, error) {
	if e.closed {
		return 0, ErrEncoderClosed
	}
	if out == nil {
		return 0, ErrNilBuffer
	}

	total := 0
	for {
		args, code := sys.EncEncode(e.handle, nil, out[total:], -1)
		if int(code) == int(EncErrEncodeEOF) {
			return total, nil
		}
		if !code.OK() {
			return total, encErr(int(code))
		}
		if args.NumOutBytes == 0 {
			return total, nil
		}
		total += args.NumOutBytes
	}
}

// EstimateOutputSize returns a conservative output buffer size in bytes
// for encoding numSamples input samples (across all channels),
// including the frames a final Flush would produce.
func (e *Encoder) EstimateOutputSize(numSamples int) int {
	info, err := e.Info()
	if err != nil || info.FrameLength == 0 || info.InputChannels == 0 {
		return 0
	}
	samplesPerFrame := info.FrameLength * info.InputChannels
	frames := numSamples/samplesPerFrame + 4 // partial frame + codec delay drained by Flush
	return frames * info.MaxOutBufBytes
}

// Close releases the native encoder handle. It is idempotent; after the
// first call every other method returns ErrEncoderClosed.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return encErr(int(sys.EncClose(e.handle)))
}
