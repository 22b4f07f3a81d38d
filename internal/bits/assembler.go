package bits

// ByteAssembler regroups single bits into bytes, first bit in becoming the most significant bit of each output byte.
// It is the inverse of BitReader.
type ByteAssembler struct {
	pendingByte byte
	pendingBits uint
}

func NewByteAssembler() *ByteAssembler {
	return &ByteAssembler{}
}

// WriteBit adds the next bit to the group under assembly. When the bit completes an 8-bit group, the assembled byte
// is returned along with true.
func (ba *ByteAssembler) WriteBit(bit byte) (byte, bool) {
	ba.pendingByte = ba.pendingByte<<1 | bit&1
	ba.pendingBits++
	if ba.pendingBits < 8 {
		return 0, false
	}

	assembledByte := ba.pendingByte
	ba.pendingByte = 0
	ba.pendingBits = 0
	return assembledByte, true
}

// PendingBits returns how many bits of an unfinished group are buffered.
func (ba *ByteAssembler) PendingBits() uint {
	return ba.pendingBits
}

// PendingZero reports whether every buffered bit of the unfinished group is zero.
func (ba *ByteAssembler) PendingZero() bool {
	return ba.pendingByte == 0
}
