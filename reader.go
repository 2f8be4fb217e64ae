// Package bufread provides a buffered reader with a mark/reset rewind
// protocol on top of any byte source.
package bufread

import (
	"io"
)

const DefaultBufferSize = 8196

// InputStream is the only capability required from the wrapped source:
// fill a caller-provided region and report how many bytes landed there.
// Every io.Reader satisfies it.
type InputStream interface {
	Read(buff []byte) (n int, err error)
}

// MarkReader is what the Reader exposes to its callers: plain buffered
// reads plus the mark/reset rewind protocol.
type MarkReader interface {
	io.Reader
	Mark(readLimit int) error
	Reset() error
}

// Reader wraps an InputStream and amortizes small reads through an
// internal buffer. A caller can mark a position and later rewind to it
// with Reset, as long as no more than the declared read limit has been
// consumed since the mark and no refill happened in between.
//
// A Reader is a single-owner component: it must not be shared between
// goroutines without external synchronization.
type Reader struct {
	fd     InputStream
	buf    []byte
	pos    int
	cap    int
	mark   int
	marked bool
	ahead  int
	in     ioData
}

func New(fd InputStream) *Reader {
	return WithCapacity(fd, DefaultBufferSize)
}

func WithCapacity(fd InputStream, capacity int) *Reader {
	rd := new(Reader)
	rd.fd = fd
	rd.buf = make([]byte, capacity)
	rd.pos = 0
	rd.cap = 0
	return rd
}

// Read copies up to len(p) unconsumed bytes into p, topping the buffer
// up from the source at most once. It returns how many bytes landed in
// p, which can be fewer than asked (short reads are results, not
// errors), and io.EOF once the source is drained.
func (rd *Reader) Read(p []byte) (int, error) {
	if len(p) > len(rd.buf) {
		rd.grow(len(p))
	}

	if rd.buffered() < len(p) {
		if err := rd.fill(); err != nil {
			if rd.buffered() == 0 {
				return 0, err
			}
			logSwallowedFillError(err)
		}
	}

	n := min(rd.cap, len(p))
	n = copy(p[:n], rd.buf[rd.pos:rd.cap])
	rd.consume(n)

	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Buffer returns the unconsumed bytes currently held, valid until the
// next mutating call.
func (rd *Reader) Buffer() []byte {
	return rd.buf[rd.pos:rd.cap]
}

// Mark records the current position so Reset can rewind to it, for as
// long as no more than readLimit bytes get consumed past it. Any refill
// after the mark forfeits it as well, so the promise only spans bytes
// that already fit in the buffer.
func (rd *Reader) Mark(readLimit int) error {
	if readLimit > len(rd.buf) {
		rd.grow(readLimit)
	}

	if rd.buffered() < readLimit {
		if err := rd.fill(); err != nil {
			return err
		}
	}

	rd.mark = rd.pos
	rd.marked = true
	rd.ahead = readLimit
	return nil
}

// Reset rewinds the read cursor to the last mark. Without a valid mark
// it does nothing.
func (rd *Reader) Reset() error {
	if rd.marked {
		rd.pos = rd.mark
	}
	return nil
}

func (rd *Reader) fill() error {
	if rd.pos == rd.cap {
		n, err := rd.read(rd.buf)
		rd.cap = n
		rd.pos = 0
		rd.unmark()
		if err != nil {
			return err
		}
		logFill(n, false)
		return nil
	}

	// Shift the unconsumed tail down to the start of the buffer, then
	// top up the free region right after it. The two regions overlap,
	// but the builtin copy has memmove semantics.
	size := rd.buffered()
	copy(rd.buf, rd.buf[rd.pos:rd.cap])
	n, err := rd.read(rd.buf[size:])
	rd.cap = size + n
	rd.pos = 0
	rd.unmark()
	if err != nil {
		return err
	}
	logFill(n, true)
	return nil
}

func (rd *Reader) read(region []byte) (int, error) {
	n, err := rd.fd.Read(region)
	rd.in.add(n)
	if err == io.EOF {
		// End of stream is a zero count, not a failure
		return n, nil
	}
	if err != nil {
		return n, newSourceError(err)
	}
	return n, nil
}

func (rd *Reader) consume(amount int) {
	rd.pos = min(rd.pos+amount, rd.cap)
	if rd.marked && rd.pos > rd.mark+rd.ahead {
		rd.unmark()
	}
}

func (rd *Reader) unmark() {
	rd.marked = false
	rd.mark = 0
	rd.ahead = 0
}

func (rd *Reader) buffered() int {
	return rd.cap - rd.pos
}

func (rd *Reader) grow(length int) {
	if length <= len(rd.buf) {
		return // The buffer never shrinks
	}
	logGrow(len(rd.buf), length)
	grown := make([]byte, length)
	copy(grown, rd.buf)
	rd.buf = grown
}
