package bufread

type ioData struct {
	bytes int
	calls int
}

func (i *ioData) add(bytes int) {
	i.bytes += bytes
	if bytes > 0 {
		i.calls++
	}
}

func (i *ioData) getCalls() int {
	return i.calls
}

func (i *ioData) getByteCount() int {
	return i.bytes
}

// NumberOfReads reports how many source calls delivered bytes so far.
func (rd *Reader) NumberOfReads() int {
	return rd.in.getCalls()
}

// BytesIn reports the total number of bytes pulled from the source.
func (rd *Reader) BytesIn() int {
	return rd.in.getByteCount()
}
