package sys

/*
#include <fdk-aac/aacdecoder_lib.h>

// aacDecoder_Fill and aacDecoder_ConfigRaw take arrays of buffer
// pointers; build the single-element arrays on the C stack.
static AAC_DECODER_ERROR godec_fill(HANDLE_AACDECODER dec,
		UCHAR *buf, UINT size, UINT *valid)
{
	return aacDecoder_Fill(dec, &buf, &size, valid);
}

static AAC_DECODER_ERROR godec_config_raw(HANDLE_AACDECODER dec,
		UCHAR *conf, UINT size)
{
	return aacDecoder_ConfigRaw(dec, &conf, &size);
}
*/
import "C"
import "unsafe"

// DecoderHandle owns a native HANDLE_AACDECODER. The zero value is not
// usable; obtain one from DecOpen.
type DecoderHandle struct {
	ptr C.HANDLE_AACDECODER
}

// DecParam identifies a decoder parameter for DecSetParam.
// Values match the native AACDEC_PARAM enum.
type DecParam uint32

// Decoder parameters (aacdecoder_lib.h, AACDEC_PARAM).
const (
	DecParamPCMDualChannelOutputMode DecParam = 0x0002
	DecParamPCMOutputChannelMapping  DecParam = 0x0003
	DecParamPCMLimiterEnable         DecParam = 0x0004
	DecParamPCMLimiterAttackTime     DecParam = 0x0005
	DecParamPCMLimiterReleaseTime    DecParam = 0x0006
	DecParamPCMMinOutputChannels     DecParam = 0x0011
	DecParamPCMMaxOutputChannels     DecParam = 0x0012
	DecParamConcealMethod            DecParam = 0x0100
)

// Decode flags for DecDecodeFrame (AACDEC_CONCEAL and friends).
const (
	DecFlagConceal uint = 1
	DecFlagFlush   uint = 2
	DecFlagIntr    uint = 4
	DecFlagClrHist uint = 8
)

// StreamInfo mirrors the scalar fields of CStreamInfo.
type StreamInfo struct {
	SampleRate         int
	FrameSize          int
	NumChannels        int
	AACSampleRate      int
	Profile            int
	AOT                int
	ChannelConfig      int
	Bitrate            int
	AACSamplesPerFrame int
	AACNumChannels     int
	ExtAOT             int
	ExtSamplingRate    int
	OutputDelay        uint
	Flags              uint
	NumLostAccessUnits int
	NumTotalBytes      int
	NumBadBytes        int
	NumTotalAccessUnit int
	NumBadAccessUnits  int
}

// DecOpen allocates a native decoder for the given TRANSPORT_TYPE value.
// Returns nil if the native library could not allocate the instance.
func DecOpen(transport int, layers uint) *DecoderHandle {
	p := C.aacDecoder_Open(C.TRANSPORT_TYPE(transport), C.UINT(layers))
	if p == nil {
		return nil
	}
	return &DecoderHandle{ptr: p}
}

// DecClose releases the native decoder.
func DecClose(h *DecoderHandle) {
	C.aacDecoder_Close(h.ptr)
	h.ptr = nil
}

// DecConfigRaw pushes an out-of-band AudioSpecificConfig to the decoder.
func DecConfigRaw(h *DecoderHandle, asc []byte) Code {
	if len(asc) == 0 {
		return Code(C.AAC_DEC_UNSUPPORTED_FORMAT)
	}
	return Code(C.godec_config_raw(h.ptr,
		(*C.UCHAR)(unsafe.Pointer(&asc[0])), C.UINT(len(asc))))
}

// DecSetParam wraps aacDecoder_SetParam.
func DecSetParam(h *DecoderHandle, param DecParam, value int) Code {
	return Code(C.aacDecoder_SetParam(h.ptr, C.AACDEC_PARAM(param), C.INT(value)))
}

// DecFill feeds bitstream bytes to the decoder's internal buffer and
// returns how many input bytes were consumed.
func DecFill(h *DecoderHandle, data []byte) (consumed int, c Code) {
	if len(data) == 0 {
		return 0, 0
	}
	valid := C.UINT(len(data))
	code := C.godec_fill(h.ptr,
		(*C.UCHAR)(unsafe.Pointer(&data[0])), C.UINT(len(data)), &valid)
	return len(data) - int(valid), Code(code)
}

// DecDecodeFrame decodes one access unit into the PCM buffer. The
// buffer size is passed in samples, matching aacDecoder_DecodeFrame.
func DecDecodeFrame(h *DecoderHandle, pcm []int16, flags uint) Code {
	var p *C.INT_PCM
	if len(pcm) > 0 {
		p = (*C.INT_PCM)(unsafe.Pointer(&pcm[0]))
	}
	return Code(C.aacDecoder_DecodeFrame(h.ptr, p, C.INT(len(pcm)), C.UINT(flags)))
}

// DecGetFreeBytes returns the free space in the decoder's internal
// input buffer.
func DecGetFreeBytes(h *DecoderHandle) (uint, Code) {
	var free C.UINT
	c := C.aacDecoder_GetFreeBytes(h.ptr, &free)
	return uint(free), Code(c)
}

// DecStreamInfo snapshots the native CStreamInfo. Returns the zero value
// if the library has no stream info yet.
func DecStreamInfo(h *DecoderHandle) StreamInfo {
	ci := C.aacDecoder_GetStreamInfo(h.ptr)
	if ci == nil {
		return StreamInfo{}
	}
	return StreamInfo{
		SampleRate:         int(ci.sampleRate),
		FrameSize:          int(ci.frameSize),
		NumChannels:        int(ci.numChannels),
		AACSampleRate:      int(ci.aacSampleRate),
		Profile:            int(ci.profile),
		AOT:                int(ci.aot),
		ChannelConfig:      int(ci.channelConfig),
		Bitrate:            int(ci.bitRate),
		AACSamplesPerFrame: int(ci.aacSamplesPerFrame),
		AACNumChannels:     int(ci.aacNumChannels),
		ExtAOT:             int(ci.extAot),
		ExtSamplingRate:    int(ci.extSamplingRate),
		OutputDelay:        uint(ci.outputDelay),
		Flags:              uint(ci.flags),
		NumLostAccessUnits: int(ci.numLostAccessUnits),
		NumTotalBytes:      int(ci.numTotalBytes),
		NumBadBytes:        int(ci.numBadBytes),
		NumTotalAccessUnit: int(ci.numTotalAccessUnits),
		NumBadAccessUnits:  int(ci.numBadAccessUnits),
	}
}
