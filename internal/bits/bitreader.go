package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from most significant
// to least significant within each byte, with byte order preserved, so the stream order matches the order in which
// the bytes would be written out.
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

// ReadBit returns the next bit of the stream, or false once all bits have been consumed.
func (br *BitReader) ReadBit() (byte, bool) {
	if len(br.bytes) == 0 {
		return 0, false
	}

	bit := (br.bytes[0] >> (7 - br.currentBitIdx)) & 1
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit, true
}
