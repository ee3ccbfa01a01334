package wave

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	format := Format{SampleRate: 48000, Channels: 2}
	samples := []int16{0, 100, -100, 32767, -32768, 1, -1, 12345}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, format, samples))
	assert.Equal(t, 44+len(samples)*2, buf.Len())

	got, gotSamples, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, format, got)
	assert.Equal(t, samples, gotSamples)
}

func TestDecodeSkipsUnknownChunks(t *testing.T) {
	format := Format{SampleRate: 44100, Channels: 1}
	samples := []int16{1, 2, 3, 4}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, format, samples))
	raw := buf.Bytes()

	// Splice a LIST chunk with an odd body length between the fmt and
	// data chunks; the odd length exercises the word-aligned skip.
	list := []byte("LIST")
	list = binary.LittleEndian.AppendUint32(list, 5)
	list = append(list, 'I', 'N', 'F', 'O', 0x00, 0x00)

	spliced := append([]byte(nil), raw[:36]...)
	spliced = append(spliced, list...)
	spliced = append(spliced, raw[36:]...)

	got, gotSamples, err := Decode(bytes.NewReader(spliced))
	require.NoError(t, err)
	assert.Equal(t, format, got)
	assert.Equal(t, samples, gotSamples)
}

func TestDecodeErrors(t *testing.T) {
	var valid bytes.Buffer
	require.NoError(t, Encode(&valid, Format{SampleRate: 44100, Channels: 2}, []int16{1, 2, 3, 4}))

	t.Run("empty", func(t *testing.T) {
		_, _, err := Decode(bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrNotWave)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), valid.Bytes()...)
		copy(bad[8:12], "AIFF")
		_, _, err := Decode(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrNotWave)
	})

	t.Run("truncated data chunk", func(t *testing.T) {
		bad := valid.Bytes()[:valid.Len()-3]
		_, _, err := Decode(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("not 16 bit", func(t *testing.T) {
		bad := append([]byte(nil), valid.Bytes()...)
		binary.LittleEndian.PutUint16(bad[34:36], 8)
		_, _, err := Decode(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("non pcm format tag", func(t *testing.T) {
		bad := append([]byte(nil), valid.Bytes()...)
		binary.LittleEndian.PutUint16(bad[20:22], 3)
		_, _, err := Decode(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("data before fmt", func(t *testing.T) {
		bad := append([]byte(nil), valid.Bytes()...)
		copy(bad[12:16], "data")
		_, _, err := Decode(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrNotWave)
	})
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Format{SampleRate: 8000, Channels: 1}, nil))
	assert.Equal(t, 44, buf.Len())

	format, samples, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Format{SampleRate: 8000, Channels: 1}, format)
	assert.Empty(t, samples)
}
