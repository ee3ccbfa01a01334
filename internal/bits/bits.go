// Package bits implements big-endian bit level reading and writing for
// the ADTS header codec.
package bits

// Reader reads bits most-significant-first from a byte buffer.
//
// Reads past the end of the buffer return zeros and set the error flag
// instead of panicking, so header parsers can read a fixed field layout
// and check for truncation once at the end.
type Reader struct {
	buf []byte
	pos int // bit position from the start of buf
	err bool
}

// NewReader creates a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Read returns the next n bits (n <= 32) as an unsigned integer.
func (r *Reader) Read(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v <<= 1
		byteIdx := r.pos >> 3
		if byteIdx >= len(r.buf) {
			r.err = true
			r.pos++
			continue
		}
		bit := (r.buf[byteIdx] >> (7 - uint(r.pos&7))) & 1
		v |= uint32(bit)
		r.pos++
	}
	return v
}

// ReadBool reads one bit as a flag.
func (r *Reader) ReadBool() bool {
	return r.Read(1) == 1
}

// Skip advances the position by n bits without returning them.
func (r *Reader) Skip(n int) {
	r.pos += n
	if r.pos > len(r.buf)*8 {
		r.err = true
	}
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int {
	return r.pos
}

// Err reports whether any read ran past the end of the buffer.
func (r *Reader) Err() bool {
	return r.err
}

// Writer appends bits most-significant-first to a byte buffer.
type Writer struct {
	buf  []byte
	nbit int // bits used in the last byte of buf, 0 means byte-aligned
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write appends the low n bits of v (n <= 32), most significant first.
func (w *Writer) Write(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		bit := byte(v>>uint(i)) & 1
		if w.nbit == 0 {
			w.buf = append(w.buf, 0)
		}
		last := len(w.buf) - 1
		w.buf[last] |= bit << (7 - uint(w.nbit))
		w.nbit = (w.nbit + 1) & 7
	}
}

// WriteBool appends one bit.
func (w *Writer) WriteBool(b bool) {
	if b {
		w.Write(1, 1)
	} else {
		w.Write(0, 1)
	}
}

// Bytes returns the written bits padded with zeros to a byte boundary.
// The returned slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	if w.nbit == 0 {
		return len(w.buf) * 8
	}
	return (len(w.buf)-1)*8 + w.nbit
}
