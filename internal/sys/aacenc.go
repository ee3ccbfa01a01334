package sys

/*
#include <stdlib.h>
#include <string.h>
#include <fdk-aac/aacenc_lib.h>

// Builds the buffer descriptors on the C stack. The identifier and size
// arrays must stay alive for the duration of the aacEncEncode call, and
// keeping them in C memory avoids handing the library Go pointers to
// memory that itself contains Go pointers.
static AACENC_ERROR goenc_encode(HANDLE_AACENCODER enc,
		void *in_buf, INT in_size, INT num_in_samples,
		void *out_buf, INT out_size,
		AACENC_OutArgs *out_args)
{
	AACENC_BufDesc in_desc, out_desc;
	AACENC_InArgs in_args;
	INT in_id = IN_AUDIO_DATA;
	INT in_el = sizeof(INT_PCM);
	INT out_id = OUT_BITSTREAM_DATA;
	INT out_el = 1;

	memset(&in_desc, 0, sizeof(in_desc));
	memset(&out_desc, 0, sizeof(out_desc));
	memset(&in_args, 0, sizeof(in_args));
	memset(out_args, 0, sizeof(*out_args));

	in_desc.numBufs = 1;
	in_desc.bufs = &in_buf;
	in_desc.bufferIdentifiers = &in_id;
	in_desc.bufSizes = &in_size;
	in_desc.bufElSizes = &in_el;

	out_desc.numBufs = 1;
	out_desc.bufs = &out_buf;
	out_desc.bufferIdentifiers = &out_id;
	out_desc.bufSizes = &out_size;
	out_desc.bufElSizes = &out_el;

	in_args.numInSamples = num_in_samples;
	in_args.numAncBytes = 0;

	return aacEncEncode(enc, &in_desc, &out_desc, &in_args, out_args);
}
*/
import "C"
import "unsafe"

// EncoderHandle owns a native HANDLE_AACENCODER. The zero value is not
// usable; obtain one from EncOpen.
type EncoderHandle struct {
	ptr C.HANDLE_AACENCODER
}

// EncParam identifies an encoder parameter for EncSetParam.
// Values match the native AACENC_PARAM enum.
type EncParam uint32

// Encoder parameters (aacenc_lib.h, AACENC_PARAM).
const (
	EncParamAOT              EncParam = 0x0100
	EncParamBitrate          EncParam = 0x0101
	EncParamBitrateMode      EncParam = 0x0102
	EncParamSampleRate       EncParam = 0x0103
	EncParamSBRMode          EncParam = 0x0104
	EncParamGranuleLength    EncParam = 0x0105
	EncParamChannelMode      EncParam = 0x0106
	EncParamChannelOrder     EncParam = 0x0107
	EncParamSBRRatio         EncParam = 0x0108
	EncParamAfterburner      EncParam = 0x0200
	EncParamBandwidth        EncParam = 0x0203
	EncParamPeakBitrate      EncParam = 0x0207
	EncParamTransmux         EncParam = 0x0300
	EncParamHeaderPeriod     EncParam = 0x0301
	EncParamSignalingMode    EncParam = 0x0302
	EncParamTPSubframes      EncParam = 0x0303
	EncParamAudioMuxVer      EncParam = 0x0304
	EncParamProtection       EncParam = 0x0306
	EncParamAncillaryBitrate EncParam = 0x0500
	EncParamMetadataMode     EncParam = 0x0600
)

// EncInfo mirrors AACENC_InfoStruct with the configuration buffer copied
// out into a Go slice.
type EncInfo struct {
	MaxOutBufBytes uint
	MaxAncBytes    uint
	InBufFillLevel uint
	InputChannels  uint
	FrameLength    uint
	NDelay         uint
	NDelayCore     uint
	ConfBuf        []byte
}

// EncOutArgs mirrors AACENC_OutArgs for a single aacEncEncode call.
type EncOutArgs struct {
	NumOutBytes  int
	NumInSamples int
	NumAncBytes  int
}

// EncOpen allocates a native encoder instance via aacEncOpen.
func EncOpen(encModules, maxChannels uint) (*EncoderHandle, Code) {
	h := &EncoderHandle{}
	c := C.aacEncOpen(&h.ptr, C.UINT(encModules), C.UINT(maxChannels))
	if c != C.AACENC_OK {
		return nil, Code(c)
	}
	return h, Code(c)
}

// EncClose releases the native encoder. The handle pointer is nulled by
// the library; calling EncClose again on the same handle is harmless.
func EncClose(h *EncoderHandle) Code {
	return Code(C.aacEncClose(&h.ptr))
}

// EncSetParam wraps aacEncoder_SetParam.
func EncSetParam(h *EncoderHandle, param EncParam, value uint) Code {
	return Code(C.aacEncoder_SetParam(h.ptr, C.AACENC_PARAM(param), C.UINT(value)))
}

// EncGetParam wraps aacEncoder_GetParam.
func EncGetParam(h *EncoderHandle, param EncParam) uint {
	return uint(C.aacEncoder_GetParam(h.ptr, C.AACENC_PARAM(param)))
}

// EncEncodeInit performs the all-null aacEncEncode call that commits the
// configured parameters and initializes the encoder.
func EncEncodeInit(h *EncoderHandle) Code {
	return Code(C.aacEncEncode(h.ptr, nil, nil, nil, nil))
}

// EncEncode runs one aacEncEncode call. in may be nil together with a
// negative numInSamples to drain the encoder; the native library signals
// the end of the drain with AACENC_ENCODE_EOF.
func EncEncode(h *EncoderHandle, in []int16, out []byte, numInSamples int) (EncOutArgs, Code) {
	var inPtr, outPtr unsafe.Pointer
	var inSize C.INT
	if len(in) > 0 {
		inPtr = unsafe.Pointer(&in[0])
		inSize = C.INT(len(in) * 2)
	}
	if len(out) > 0 {
		outPtr = unsafe.Pointer(&out[0])
	}

	var outArgs C.AACENC_OutArgs
	c := C.goenc_encode(h.ptr,
		inPtr, inSize, C.INT(numInSamples),
		outPtr, C.INT(len(out)),
		&outArgs)

	return EncOutArgs{
		NumOutBytes:  int(outArgs.numOutBytes),
		NumInSamples: int(outArgs.numInSamples),
		NumAncBytes:  int(outArgs.numAncBytes),
	}, Code(c)
}

// EncInfoGet wraps aacEncInfo.
func EncInfoGet(h *EncoderHandle) (EncInfo, Code) {
	var ci C.AACENC_InfoStruct
	c := C.aacEncInfo(h.ptr, &ci)
	if c != C.AACENC_OK {
		return EncInfo{}, Code(c)
	}

	info := EncInfo{
		MaxOutBufBytes: uint(ci.maxOutBufBytes),
		MaxAncBytes:    uint(ci.maxAncBytes),
		InBufFillLevel: uint(ci.inBufFillLevel),
		InputChannels:  uint(ci.inputChannels),
		FrameLength:    uint(ci.frameLength),
		NDelay:         uint(ci.nDelay),
		NDelayCore:     uint(ci.nDelayCore),
	}
	confSize := int(ci.confSize)
	if confSize > len(ci.confBuf) {
		confSize = len(ci.confBuf)
	}
	info.ConfBuf = C.GoBytes(unsafe.Pointer(&ci.confBuf[0]), C.int(confSize))
	return info, Code(c)
}
