package adts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stereoLCHeader is a valid 7-byte header for an AAC-LC 44100 Hz stereo
// frame of 64 payload bytes (frame length 71).
func stereoLCHeader() Header {
	return Header{
		Profile:        1, // AAC-LC
		SampleRateIdx:  4, // 44100 Hz
		ChannelConfig:  2,
		FrameLength:    HeaderSize + 64,
		BufferFullness: 0x7FF,
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	want := stereoLCHeader()
	raw := want.AppendTo(nil)
	require.Len(t, raw, HeaderSize)

	got, err := ParseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestHeaderAccessors(t *testing.T) {
	h := stereoLCHeader()
	assert.Equal(t, 44100, h.SampleRate())
	assert.Equal(t, 2, h.Channels())
	assert.Equal(t, 2, h.ObjectType())
	assert.Equal(t, HeaderSize, h.Size())
	assert.Equal(t, 64, h.PayloadLength())

	h.ChannelConfig = 7
	assert.Equal(t, 8, h.Channels())

	h.CRCPresent = true
	assert.Equal(t, HeaderSizeCRC, h.Size())

	h.SampleRateIdx = 13
	assert.Equal(t, 0, h.SampleRate())
}

func TestParseHeaderErrors(t *testing.T) {
	valid := stereoLCHeader().AppendTo(nil)

	t.Run("truncated", func(t *testing.T) {
		_, err := ParseHeader(valid[:HeaderSize-1])
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("no syncword", func(t *testing.T) {
		bad := append([]byte(nil), valid...)
		bad[0] = 0x00
		_, err := ParseHeader(bad)
		assert.ErrorIs(t, err, ErrSyncword)
	})

	t.Run("nonzero layer", func(t *testing.T) {
		bad := append([]byte(nil), valid...)
		bad[1] |= 0x06
		_, err := ParseHeader(bad)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("reserved sample rate index", func(t *testing.T) {
		h := stereoLCHeader()
		h.SampleRateIdx = 14
		_, err := ParseHeader(h.AppendTo(nil))
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("frame length below header size", func(t *testing.T) {
		h := stereoLCHeader()
		h.FrameLength = 3
		_, err := ParseHeader(h.AppendTo(nil))
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestWrapFrame(t *testing.T) {
	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(i)
	}

	raw := WrapFrame(nil, stereoLCHeader(), payload)
	require.Len(t, raw, HeaderSize+len(payload))

	h, err := ParseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize+len(payload), h.FrameLength)
	assert.Equal(t, len(payload), h.PayloadLength())
	assert.Equal(t, payload, raw[HeaderSize:])
}

func TestSplit(t *testing.T) {
	payloads := [][]byte{
		make([]byte, 32),
		make([]byte, 200),
		make([]byte, 7),
	}
	var stream []byte
	// Leading garbage before the first frame, including a fake
	// syncword byte that must be skipped.
	stream = append(stream, 0x01, 0xFF, 0x02)
	for _, p := range payloads {
		stream = WrapFrame(stream, stereoLCHeader(), p)
	}

	frames, err := Split(stream)
	require.NoError(t, err)
	require.Len(t, frames, len(payloads))
	for i, f := range frames {
		assert.Equal(t, 44100, f.Header.SampleRate(), "frame %d", i)
		assert.Equal(t, len(payloads[i]), len(f.Payload()), "frame %d", i)
	}
}

func TestSplitTruncated(t *testing.T) {
	stream := WrapFrame(nil, stereoLCHeader(), make([]byte, 64))
	stream = WrapFrame(stream, stereoLCHeader(), make([]byte, 64))

	t.Run("mid payload", func(t *testing.T) {
		frames, err := Split(stream[:len(stream)-10])
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Len(t, frames, 1)
	})

	t.Run("mid header", func(t *testing.T) {
		frameLen := len(stream) / 2
		frames, err := Split(stream[:frameLen+3])
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Len(t, frames, 1)
	})
}

func TestSplitNoFrames(t *testing.T) {
	// Garbage of any length, with or without lone 0xFF bytes, is a
	// missing syncword, never a truncated frame.
	inputs := [][]byte{
		{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
		{0x00, 0x01},
		{0xFF},
		{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x09, 0x0A, 0xFF},
	}
	for _, in := range inputs {
		_, err := Split(in)
		assert.ErrorIs(t, err, ErrSyncword, "input %x", in)
	}
}
