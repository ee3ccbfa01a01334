package fdkaac

// Transport represents the bitstream packaging around the raw AAC
// access units. Values match the native TRANSPORT_TYPE enum.
type Transport int

// Transport formats.
const (
	TransportRaw      Transport = 0  // Raw access units, config carried out of band
	TransportADIF     Transport = 1  // Audio Data Interchange Format
	TransportADTS     Transport = 2  // Audio Data Transport Stream
	TransportLATMMCP1 Transport = 6  // LATM with in-band config
	TransportLATMMCP0 Transport = 7  // LATM, config out of band
	TransportLOAS     Transport = 10 // LOAS/LATM with sync layer
)

// AudioObjectType selects the AAC profile. Values match the native
// AUDIO_OBJECT_TYPE enum.
type AudioObjectType int

// Audio object types.
const (
	AOTAACLC    AudioObjectType = 2   // MPEG-4 AAC Low Complexity
	AOTSBR      AudioObjectType = 5   // MPEG-4 HE-AAC (LC + SBR)
	AOTPS       AudioObjectType = 29  // MPEG-4 HE-AAC v2 (LC + SBR + PS), stereo input only
	AOTAACLD    AudioObjectType = 23  // MPEG-4 AAC Low-Delay
	AOTAACELD   AudioObjectType = 39  // MPEG-4 AAC Enhanced Low-Delay
	AOTMP2AACLC AudioObjectType = 129 // MPEG-2 AAC Low Complexity
	AOTMP2SBR   AudioObjectType = 132 // MPEG-2 HE-AAC
)

// ChannelMode describes the input channel configuration of the encoder.
// Values match the native CHANNEL_MODE enum.
type ChannelMode int

// Channel modes.
const (
	ChannelModeMono     ChannelMode = 1 // 1 channel: C
	ChannelModeStereo   ChannelMode = 2 // 2 channels: L, R
	ChannelMode3        ChannelMode = 3 // 3 channels: C, L, R
	ChannelMode4        ChannelMode = 4 // 4 channels: C, L, R, rear C
	ChannelMode5        ChannelMode = 5 // 5 channels: C, L, R, LS, RS
	ChannelMode5_1      ChannelMode = 6 // 5.1: C, L, R, LS, RS, LFE
	ChannelMode7_1Front ChannelMode = 7 // 7.1 with front channel pair
)

// NumChannels returns the channel count for the mode, or 0 for an
// unknown mode.
func (m ChannelMode) NumChannels() int {
	switch m {
	case ChannelModeMono:
		return 1
	case ChannelModeStereo:
		return 2
	case ChannelMode3:
		return 3
	case ChannelMode4:
		return 4
	case ChannelMode5:
		return 5
	case ChannelMode5_1:
		return 6
	case ChannelMode7_1Front:
		return 8
	}
	return 0
}

// BitrateMode selects constant or variable bitrate operation. The VBR
// modes map onto the native AACENC_BITRATEMODE values 1-5; in CBR mode
// the target bitrate is taken from EncoderConfig.Bitrate.
type BitrateMode int

// Bitrate modes.
const (
	BitrateModeCBR         BitrateMode = 0
	BitrateModeVBRVeryLow  BitrateMode = 1
	BitrateModeVBRLow      BitrateMode = 2
	BitrateModeVBRMedium   BitrateMode = 3
	BitrateModeVBRHigh     BitrateMode = 4
	BitrateModeVBRVeryHigh BitrateMode = 5
)

// sampleRates lists the sampling frequencies of the MPEG-4 sampling
// frequency index table (ISO/IEC 14496-3). libfdk-aac accepts exactly
// these rates.
var sampleRates = [13]int{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000,
	7350,
}

// ValidSampleRate reports whether rate is one of the sampling
// frequencies the codec supports.
func ValidSampleRate(rate int) bool {
	for _, r := range sampleRates {
		if r == rate {
			return true
		}
	}
	return false
}

// SampleRateIndex returns the MPEG-4 sampling frequency index for a
// rate, or -1 if the rate is not in the table.
func SampleRateIndex(rate int) int {
	for i, r := range sampleRates {
		if r == rate {
			return i
		}
	}
	return -1
}

// SampleRateByIndex returns the sampling frequency for an MPEG-4
// sampling frequency index, or 0 for reserved indices.
func SampleRateByIndex(idx int) int {
	if idx < 0 || idx >= len(sampleRates) {
		return 0
	}
	return sampleRates[idx]
}
