package bufread

import "io"

// Peek returns the next unconsumed byte without consuming it, pulling
// from the source if the buffer ran dry.
func (rd *Reader) Peek() (byte, error) {
	if rd.buffered() == 0 {
		if err := rd.fill(); err != nil {
			return 0, err
		}
	}

	if rd.buffered() == 0 {
		return 0, io.EOF
	}

	return rd.buf[rd.pos], nil
}

// ReadByte returns and consumes the next byte.
func (rd *Reader) ReadByte() (byte, error) {
	ch, err := rd.Peek()
	if err != nil {
		return 0, err
	}
	rd.consume(1)
	return ch, nil
}

// Discard drops up to n already-buffered bytes and reports how many
// went away. It never touches the source.
func (rd *Reader) Discard(n int) int {
	dropped := min(n, rd.buffered())
	rd.consume(dropped)
	return dropped
}
