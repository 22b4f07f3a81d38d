package bits

import (
	"testing"
)

func TestWriteBit(t *testing.T) {

	// 01100101 11 -> one complete byte and two pending bits
	bitsToWrite := []byte{0, 1, 1, 0, 0, 1, 0, 1, 1, 1}

	tAssembler := NewByteAssembler()
	var assembled []byte
	for _, bit := range bitsToWrite {
		if assembledByte, complete := tAssembler.WriteBit(bit); complete {
			assembled = append(assembled, assembledByte)
		}
	}

	if len(assembled) != 1 || assembled[0] != 101 {
		t.Errorf("Expected a single assembled byte of value 101, got %v", assembled)
	}
	if tAssembler.PendingBits() != 2 {
		t.Errorf("Expected 2 pending bits, got %d", tAssembler.PendingBits())
	}
	if tAssembler.PendingZero() {
		t.Errorf("Expected pending group with set bits to report non-zero")
	}
}

func TestPendingZero(t *testing.T) {
	tAssembler := NewByteAssembler()

	if !tAssembler.PendingZero() {
		t.Errorf("Expected empty pending group to report zero")
	}

	for i := 0; i < 5; i++ {
		tAssembler.WriteBit(0)
	}
	if tAssembler.PendingBits() != 5 {
		t.Errorf("Expected 5 pending bits, got %d", tAssembler.PendingBits())
	}
	if !tAssembler.PendingZero() {
		t.Errorf("Expected all-zero pending group to report zero")
	}

	tAssembler.WriteBit(1)
	if tAssembler.PendingZero() {
		t.Errorf("Expected pending group to report non-zero after a set bit")
	}

	// complete the byte, pending state should reset
	tAssembler.WriteBit(0)
	if assembledByte, complete := tAssembler.WriteBit(0); !complete || assembledByte != 4 {
		t.Errorf("Expected completed byte of value 4, got %d (complete=%t)", assembledByte, complete)
	}
	if tAssembler.PendingBits() != 0 || !tAssembler.PendingZero() {
		t.Errorf("Expected pending state to reset after completing a byte")
	}
}
