package protocol

import "io"

// Buffer is a byte region with independent read and write cursors.
//
// A Buffer is not safe for concurrent use. Codecs borrow it for the
// duration of a single call; distinct buffers may be used in parallel.
type Buffer struct {
	data []byte
	r    int
}

// NewBuffer returns a Buffer whose readable region is data. Writes append
// after the last byte of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the unread portion of the buffer. The slice aliases the
// buffer's storage.
func (b *Buffer) Bytes() []byte { return b.data[b.r:] }

// Len returns the number of unread bytes.
func (b *Buffer) Len() int { return len(b.data) - b.r }

func (b *Buffer) ReaderIndex() int { return b.r }

func (b *Buffer) WriterIndex() int { return len(b.data) }

// SetWriterIndex discards everything written at or after i. It is used to
// roll back a partially written value.
func (b *Buffer) SetWriterIndex(i int) {
	if i < b.r || i > len(b.data) {
		panic("protocol: writer index out of range")
	}
	b.data = b.data[:i]
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.Len() == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.r:])
	b.r += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (b *Buffer) ReadByte() (byte, error) {
	if b.Len() == 0 {
		return 0, ErrBufferUnderflow
	}
	c := b.data[b.r]
	b.r++
	return c, nil
}

// Next returns the next n unread bytes and advances the read cursor past
// them. The result aliases the buffer.
func (b *Buffer) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}
	if n > b.Len() {
		return nil, ErrBufferUnderflow
	}
	p := b.data[b.r : b.r+n : b.r+n]
	b.r += n
	return p, nil
}

// ReadBytes is like Next but returns a copy.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	p, err := b.Next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, p)
	return out, nil
}

// ReadSlice returns a new Buffer bounded to the next n bytes and advances
// this buffer's read cursor by exactly n, however much of the slice the
// caller later consumes.
func (b *Buffer) ReadSlice(n int) (*Buffer, error) {
	p, err := b.Next(n)
	if err != nil {
		return nil, err
	}
	return NewBuffer(p), nil
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (b *Buffer) WriteByte(c byte) error {
	b.data = append(b.data, c)
	return nil
}

// Reserve appends n zero bytes and returns the index of the first one, so
// the caller can patch the field once its value is known.
func (b *Buffer) Reserve(n int) int {
	i := len(b.data)
	b.data = append(b.data, make([]byte, n)...)
	return i
}

// PutUint16LE overwrites the two bytes at absolute index i.
func (b *Buffer) PutUint16LE(i int, v uint16) {
	b.data[i] = byte(v)
	b.data[i+1] = byte(v >> 8)
}
