// Package wave reads and writes minimal RIFF/WAVE files carrying
// 16-bit PCM, the interchange format the codec tools consume and
// produce. Only uncompressed PCM16 is supported.
package wave

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Format errors.
var (
	// ErrNotWave is returned when the RIFF/WAVE magic is missing.
	ErrNotWave = errors.New("wave: not a RIFF/WAVE stream")

	// ErrUnsupported is returned for WAVE files that are not plain
	// 16-bit PCM.
	ErrUnsupported = errors.New("wave: only 16-bit PCM is supported")

	// ErrTruncated is returned when the stream ends inside a chunk.
	ErrTruncated = errors.New("wave: truncated stream")
)

// Format describes a PCM16 stream.
type Format struct {
	SampleRate int
	Channels   int
}

const (
	pcmFormatTag   = 1
	pcmBitsPerSamp = 16
)

// Decode reads a complete WAVE file and returns its format and the
// interleaved 16-bit samples of the data chunk.
func Decode(r io.Reader) (Format, []int16, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return Format{}, nil, ErrNotWave
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return Format{}, nil, ErrNotWave
	}

	var f Format
	haveFmt := false

	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			return Format{}, nil, ErrTruncated
		}
		id := string(chunk[0:4])
		size := int(binary.LittleEndian.Uint32(chunk[4:8]))

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return Format{}, nil, ErrTruncated
			}
			if size < 16 {
				return Format{}, nil, ErrNotWave
			}
			tag := binary.LittleEndian.Uint16(body[0:2])
			channels := binary.LittleEndian.Uint16(body[2:4])
			rate := binary.LittleEndian.Uint32(body[4:8])
			bitDepth := binary.LittleEndian.Uint16(body[14:16])
			if tag != pcmFormatTag || bitDepth != pcmBitsPerSamp {
				return Format{}, nil, ErrUnsupported
			}
			f = Format{SampleRate: int(rate), Channels: int(channels)}
			haveFmt = true

		case "data":
			if !haveFmt {
				return Format{}, nil, ErrNotWave
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return Format{}, nil, ErrTruncated
			}
			samples := make([]int16, len(body)/2)
			for i := range samples {
				samples[i] = int16(binary.LittleEndian.Uint16(body[i*2:]))
			}
			return f, samples, nil

		default:
			// Skip unknown chunks (LIST, fact, ...). Chunk bodies are
			// word aligned.
			skip := size + size&1
			if _, err := io.CopyN(io.Discard, r, int64(skip)); err != nil {
				return Format{}, nil, ErrTruncated
			}
		}
	}
}

// Encode writes a complete WAVE file containing the interleaved 16-bit
// samples in the given format.
func Encode(w io.Writer, f Format, samples []int16) error {
	dataSize := len(samples) * 2
	riffSize := 4 + 8 + 16 + 8 + dataSize

	var hdr [44]byte
	copy(hdr[0:4], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(riffSize))
	copy(hdr[8:12], "WAVE")
	copy(hdr[12:16], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:20], 16)
	binary.LittleEndian.PutUint16(hdr[20:22], pcmFormatTag)
	binary.LittleEndian.PutUint16(hdr[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(hdr[24:28], uint32(f.SampleRate))
	byteRate := f.SampleRate * f.Channels * 2
	binary.LittleEndian.PutUint32(hdr[28:32], uint32(byteRate))
	blockAlign := f.Channels * 2
	binary.LittleEndian.PutUint16(hdr[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(hdr[34:36], pcmBitsPerSamp)
	copy(hdr[36:40], "data")
	binary.LittleEndian.PutUint32(hdr[40:44], uint32(dataSize))

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	buf := make([]byte, dataSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	_, err := w.Write(buf)
	return err
}
