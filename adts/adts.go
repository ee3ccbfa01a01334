// Package adts reads and writes ADTS (Audio Data Transport Stream)
// framing, the self-describing packaging used for AAC streams outside
// of MP4 containers.
//
// The package is pure Go and independent of the native codec: it parses
// and emits the 7/9 byte frame headers and splits a byte stream into
// frames, which is what tools and tests need to reason about encoder
// output.
package adts

import (
	"github.com/pkg/errors"

	"github.com/llehouerou/go-fdkaac/internal/bits"
)

// Framing errors.
var (
	// ErrSyncword is returned when no 0xFFF syncword is found where a
	// frame header was expected.
	ErrSyncword = errors.New("adts: syncword not found")

	// ErrTruncated is returned when the data ends inside a header or a
	// frame payload.
	ErrTruncated = errors.New("adts: truncated frame")

	// ErrInvalid is returned for header field values the format does
	// not allow (reserved sampling frequency index, zero frame length).
	ErrInvalid = errors.New("adts: invalid header field")
)

// Header sizes in bytes, without and with the optional CRC word.
const (
	HeaderSize    = 7
	HeaderSizeCRC = 9
)

const syncword = 0xFFF

// sampleRates is the MPEG-4 sampling frequency index table
// (ISO/IEC 14496-3). Indices 13-15 are reserved.
var sampleRates = [13]int{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000,
	7350,
}

// Header holds the fields of one ADTS frame header.
type Header struct {
	MPEG2         bool  // ID bit: MPEG-2 stream when set
	Profile       uint8 // 2 bits: audio object type minus 1
	SampleRateIdx uint8 // 4 bits: sampling frequency index
	PrivateBit    bool
	ChannelConfig uint8 // 3 bits: channel configuration
	Original      bool
	Home          bool
	CRCPresent    bool

	// FrameLength is the total frame size in bytes, header included.
	FrameLength int

	// BufferFullness is the encoder bit reservoir state, 0x7FF for
	// variable rate streams.
	BufferFullness int

	// NumRawBlocks is the number of raw data blocks in the frame
	// minus one; normally 0.
	NumRawBlocks int
}

// SampleRate returns the sampling frequency in Hz, or 0 for a reserved
// index.
func (h Header) SampleRate() int {
	if int(h.SampleRateIdx) >= len(sampleRates) {
		return 0
	}
	return sampleRates[h.SampleRateIdx]
}

// Channels returns the channel count for the channel configuration.
// Configuration 7 means 8 channels; 0 means the channel layout is
// carried in-band and unknown to the header.
func (h Header) Channels() int {
	if h.ChannelConfig == 7 {
		return 8
	}
	return int(h.ChannelConfig)
}

// ObjectType returns the MPEG-4 audio object type (profile plus one).
func (h Header) ObjectType() int {
	return int(h.Profile) + 1
}

// Size returns the header size in bytes, 7 or 9 depending on the CRC
// flag.
func (h Header) Size() int {
	if h.CRCPresent {
		return HeaderSizeCRC
	}
	return HeaderSize
}

// PayloadLength returns the number of payload bytes following the
// header.
func (h Header) PayloadLength() int {
	return h.FrameLength - h.Size()
}

// ParseHeader parses one ADTS header at the start of data. The data
// must begin with the syncword; use Split to scan a stream with
// leading garbage.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, ErrTruncated
	}

	r := bits.NewReader(data)
	if r.Read(12) != syncword {
		return nil, ErrSyncword
	}

	h := &Header{}
	h.MPEG2 = r.ReadBool()
	if r.Read(2) != 0 { // layer, always 0
		return nil, ErrInvalid
	}
	h.CRCPresent = !r.ReadBool() // protection_absent
	h.Profile = uint8(r.Read(2))
	h.SampleRateIdx = uint8(r.Read(4))
	h.PrivateBit = r.ReadBool()
	h.ChannelConfig = uint8(r.Read(3))
	h.Original = r.ReadBool()
	h.Home = r.ReadBool()
	r.Skip(2) // copyright identification bit + start
	h.FrameLength = int(r.Read(13))
	h.BufferFullness = int(r.Read(11))
	h.NumRawBlocks = int(r.Read(2))

	if r.Err() {
		return nil, ErrTruncated
	}
	if int(h.SampleRateIdx) >= len(sampleRates) {
		return nil, ErrInvalid
	}
	if h.FrameLength < h.Size() {
		return nil, ErrInvalid
	}
	if h.CRCPresent && len(data) < HeaderSizeCRC {
		return nil, ErrTruncated
	}
	return h, nil
}

// AppendTo appends the 7-byte header encoding of h to dst and returns
// the extended slice. CRC emission is not supported: the header is
// always written with protection_absent set, matching what libfdk-aac
// produces by default.
func (h Header) AppendTo(dst []byte) []byte {
	w := bits.NewWriter()
	w.Write(syncword, 12)
	w.WriteBool(h.MPEG2)
	w.Write(0, 2) // layer
	w.WriteBool(true)
	w.Write(uint32(h.Profile), 2)
	w.Write(uint32(h.SampleRateIdx), 4)
	w.WriteBool(h.PrivateBit)
	w.Write(uint32(h.ChannelConfig), 3)
	w.WriteBool(h.Original)
	w.WriteBool(h.Home)
	w.Write(0, 2) // copyright identification bit + start
	w.Write(uint32(h.FrameLength), 13)
	w.Write(uint32(h.BufferFullness), 11)
	w.Write(uint32(h.NumRawBlocks), 2)
	return append(dst, w.Bytes()...)
}

// WrapFrame appends an ADTS frame carrying payload to dst: a header
// derived from h with the frame length filled in, followed by the
// payload bytes. The CRC flag of h is ignored.
func WrapFrame(dst []byte, h Header, payload []byte) []byte {
	h.CRCPresent = false
	h.FrameLength = HeaderSize + len(payload)
	dst = h.AppendTo(dst)
	return append(dst, payload...)
}

// Frame is one complete ADTS frame sliced out of a stream.
type Frame struct {
	Header Header

	// Data is the complete frame, header included. It aliases the
	// input passed to Split.
	Data []byte
}

// Payload returns the raw AAC access unit without the ADTS header.
func (f *Frame) Payload() []byte {
	return f.Data[f.Header.Size():]
}

// Split scans data and slices it into ADTS frames. Bytes before the
// first syncword are skipped; ErrTruncated is returned together with
// the frames parsed so far when the data ends mid-frame, ErrSyncword
// when no syncword is found at all.
func Split(data []byte) ([]Frame, error) {
	var frames []Frame
	offset := 0

	for offset < len(data) {
		if data[offset] != 0xFF || offset+1 >= len(data) || data[offset+1]&0xF6 != 0xF0 {
			offset++
			continue
		}

		// Syncword candidate; from here on a short tail means a
		// truncated frame rather than trailing garbage.
		if len(data)-offset < HeaderSize {
			return frames, ErrTruncated
		}

		h, err := ParseHeader(data[offset:])
		if err != nil {
			offset++
			continue
		}
		if offset+h.FrameLength > len(data) {
			return frames, ErrTruncated
		}

		frames = append(frames, Frame{
			Header: *h,
			Data:   data[offset : offset+h.FrameLength],
		})
		offset += h.FrameLength
	}

	if len(frames) == 0 {
		return nil, ErrSyncword
	}
	return frames, nil
}
