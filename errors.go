package fdkaac

import (
	"fmt"

	"github.com/pkg/errors"
)

// Wrapper misuse errors. These are produced by the binding itself,
// before any native call is made.
var (
	// ErrEncoderClosed is returned when an Encoder method is called
	// after Close.
	ErrEncoderClosed = errors.New("fdkaac: encoder used after Close")

	// ErrDecoderClosed is returned when a Decoder method is called
	// after Close.
	ErrDecoderClosed = errors.New("fdkaac: decoder used after Close")

	// ErrNilBuffer is returned when a nil input or output buffer is
	// passed to a call that requires one.
	ErrNilBuffer = errors.New("fdkaac: nil buffer")
)

// EncoderError is a native AACENC_ERROR code, translated one-to-one.
type EncoderError int

// Encoder error codes (aacenc_lib.h, AACENC_ERROR).
const (
	EncErrInvalidHandle        EncoderError = 0x0020
	EncErrMemoryError          EncoderError = 0x0021
	EncErrUnsupportedParameter EncoderError = 0x0022
	EncErrInvalidConfig        EncoderError = 0x0023
	EncErrInitError            EncoderError = 0x0040
	EncErrInitAACError         EncoderError = 0x0041
	EncErrInitSBRError         EncoderError = 0x0042
	EncErrInitTPError          EncoderError = 0x0043
	EncErrInitMetaError        EncoderError = 0x0044
	EncErrInitMPSError         EncoderError = 0x0045
	EncErrEncodeError          EncoderError = 0x0060
	EncErrEncodeEOF            EncoderError = 0x0080
)

// encErrMessages maps encoder error codes to the library's documented
// message text.
var encErrMessages = map[EncoderError]string{
	0:                          "Ok",
	EncErrInvalidHandle:        "Handle passed to function call was invalid.",
	EncErrMemoryError:          "Memory allocation failed.",
	EncErrUnsupportedParameter: "Parameter not available.",
	EncErrInvalidConfig:        "Configuration not provided.",
	EncErrInitError:            "General initialization error.",
	EncErrInitAACError:         "AAC library initialization error.",
	EncErrInitSBRError:         "SBR library initialization error.",
	EncErrInitTPError:          "Transport library initialization error.",
	EncErrInitMetaError:        "Meta data library initialization error.",
	EncErrInitMPSError:         "MPS library initialization error.",
	EncErrEncodeError:          "The encoding process was interrupted by an unexpected error.",
	EncErrEncodeEOF:            "End of file reached.",
}

// Error implements the error interface.
func (e EncoderError) Error() string {
	if msg, ok := encErrMessages[e]; ok {
		return msg
	}
	return fmt.Sprintf("unknown encoder error 0x%04x", int(e))
}

// Code returns the native AACENC_ERROR value.
func (e EncoderError) Code() int { return int(e) }

// DecoderError is a native AAC_DECODER_ERROR code, translated
// one-to-one. The native enum groups codes into severity ranges; the
// Is*Error predicates mirror that grouping.
type DecoderError int

// Decoder error codes (aacdecoder_lib.h, AAC_DECODER_ERROR).
const (
	DecErrOutOfMemory DecoderError = 0x0002
	DecErrUnknown     DecoderError = 0x0005

	// Synchronization errors (0x1000 range). Output buffer is invalid.
	DecErrTransportSyncError DecoderError = 0x1001
	DecErrNotEnoughBits      DecoderError = 0x1002

	// Initialization errors (0x2000 range). Output buffer is invalid.
	DecErrInvalidHandle            DecoderError = 0x2001
	DecErrUnsupportedAOT           DecoderError = 0x2002
	DecErrUnsupportedFormat        DecoderError = 0x2003
	DecErrUnsupportedERFormat      DecoderError = 0x2004
	DecErrUnsupportedEPConfig      DecoderError = 0x2005
	DecErrUnsupportedMultilayer    DecoderError = 0x2006
	DecErrUnsupportedChannelConfig DecoderError = 0x2007
	DecErrUnsupportedSampleRate    DecoderError = 0x2008
	DecErrInvalidSBRConfig         DecoderError = 0x2009
	DecErrSetParamFail             DecoderError = 0x200A
	DecErrNeedToRestart            DecoderError = 0x200B
	DecErrOutputBufferTooSmall     DecoderError = 0x200C

	// Decode errors (0x4000 range). Output buffer is valid but concealed.
	DecErrTransportError              DecoderError = 0x4001
	DecErrParseError                  DecoderError = 0x4002
	DecErrUnsupportedExtensionPayload DecoderError = 0x4003
	DecErrDecodeFrameError            DecoderError = 0x4004
	DecErrCRCError                    DecoderError = 0x4005
	DecErrInvalidCodeBook             DecoderError = 0x4006
	DecErrUnsupportedPrediction       DecoderError = 0x4007
	DecErrUnsupportedCCE              DecoderError = 0x4008
	DecErrUnsupportedLFE              DecoderError = 0x4009
	DecErrUnsupportedGainControlData  DecoderError = 0x400A
	DecErrUnsupportedSBA              DecoderError = 0x400B
	DecErrTNSReadError                DecoderError = 0x400C
	DecErrRVLCError                   DecoderError = 0x400D

	// Ancillary data errors (0x8000 range). Output buffer is valid.
	DecErrAncDataError      DecoderError = 0x8001
	DecErrTooSmallAncBuffer DecoderError = 0x8002
	DecErrTooManyAncEl      DecoderError = 0x8003
)

// decErrMessages maps decoder error codes to the library's documented
// message text.
var decErrMessages = map[DecoderError]string{
	0:                 "No error occurred. Output buffer is valid and error free.",
	DecErrOutOfMemory: "Heap returned NULL pointer. Output buffer is invalid.",
	DecErrUnknown:     "Error condition is of unknown reason, or from a another module. Output buffer is invalid.",

	DecErrTransportSyncError: "The transport decoder had synchronization problems. Do not exit decoding. Just feed new bitstream data.",
	DecErrNotEnoughBits:      "The input buffer ran out of bits.",

	DecErrInvalidHandle:            "The handle passed to the function call was invalid (NULL).",
	DecErrUnsupportedAOT:           "The AOT found in the configuration is not supported.",
	DecErrUnsupportedFormat:        "The bitstream format is not supported. ",
	DecErrUnsupportedERFormat:      "The error resilience tool format is not supported.",
	DecErrUnsupportedEPConfig:      "The error protection format is not supported.",
	DecErrUnsupportedMultilayer:    "More than one layer for AAC scalable is not supported.",
	DecErrUnsupportedChannelConfig: "The channel configuration (either number or arrangement) is not supported.",
	DecErrUnsupportedSampleRate:    "The sample rate specified in the configuration is not supported.",
	DecErrInvalidSBRConfig:         "The SBR configuration is not supported.",
	DecErrSetParamFail:             "The parameter could not be set. Either the value was out of range or the parameter does  not exist.",
	DecErrNeedToRestart:            "The decoder needs to be restarted, since the required configuration change cannot be performed.",
	DecErrOutputBufferTooSmall:     "The provided output buffer is too small.",

	DecErrTransportError:              "The transport decoder encountered an unexpected error.",
	DecErrParseError:                  "Error while parsing the bitstream. Most probably it is corrupted, or the system crashed.",
	DecErrUnsupportedExtensionPayload: "Error while parsing the extension payload of the bitstream. The extension payload type found is not supported.",
	DecErrDecodeFrameError:            "The parsed bitstream value is out of range. Most probably the bitstream is corrupt, or the system crashed.",
	DecErrCRCError:                    "The embedded CRC did not match.",
	DecErrInvalidCodeBook:             "An invalid codebook was signaled. Most probably the bitstream is corrupt, or the system  crashed.",
	DecErrUnsupportedPrediction:       "Predictor found, but not supported in the AAC Low Complexity profile. Most probably the bitstream is corrupt, or has a wrong format.",
	DecErrUnsupportedCCE:              "A CCE element was found which is not supported. Most probably the bitstream is corrupt, or has a wrong format.",
	DecErrUnsupportedLFE:              "A LFE element was found which is not supported. Most probably the bitstream is corrupt, or has a wrong format.",
	DecErrUnsupportedGainControlData:  "Gain control data found but not supported. Most probably the bitstream is corrupt, or has a wrong format.",
	DecErrUnsupportedSBA:              "SBA found, but currently not supported in the BSAC profile.",
	DecErrTNSReadError:                "Error while reading TNS data. Most probably the bitstream is corrupt or the system crashed.",
	DecErrRVLCError:                   "Error while decoding error resilient data.",

	DecErrAncDataError:      "Non severe error concerning the ancillary data handling.",
	DecErrTooSmallAncBuffer: "The registered ancillary data buffer is too small to receive the parsed data.",
	DecErrTooManyAncEl:      "More than the allowed number of ancillary data elements should be written to buffer.",
}

// Error implements the error interface.
func (e DecoderError) Error() string {
	if msg, ok := decErrMessages[e]; ok {
		return msg
	}
	return fmt.Sprintf("unknown decoder error 0x%04x", int(e))
}

// Code returns the native AAC_DECODER_ERROR value.
func (e DecoderError) Code() int { return int(e) }

// IsSyncError reports whether the code is in the transport
// synchronization range. The output buffer is invalid, but decoding can
// continue once new bitstream data is fed.
func (e DecoderError) IsSyncError() bool { return e >= 0x1000 && e <= 0x1fff }

// IsInitError reports whether the code is in the initialization range.
// The output buffer is invalid.
func (e DecoderError) IsInitError() bool { return e >= 0x2000 && e <= 0x2fff }

// IsDecodeError reports whether the code is in the decode range. The
// output buffer is valid but contains concealed audio.
func (e DecoderError) IsDecodeError() bool { return e >= 0x4000 && e <= 0x4fff }

// IsAncDataError reports whether the code concerns ancillary data only.
// The output buffer is valid.
func (e DecoderError) IsAncDataError() bool { return e >= 0x8000 && e <= 0x8fff }

// encErr converts a native code into an error, nil on success.
func encErr(code int) error {
	if code == 0 {
		return nil
	}
	return EncoderError(code)
}

// decErr converts a native code into an error, nil on success.
func decErr(code int) error {
	if code == 0 {
		return nil
	}
	return DecoderError(code)
}
