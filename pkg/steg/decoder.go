package steg

import (
	"bsteg/internal/bits"
	"bsteg/pkg/bmp"
	"bsteg/pkg/model"
	"errors"
	"fmt"
	"time"
)

var (
	ErrTerminatorNotFound = errors.New("no terminator found in pixel data, the image likely does not contain an embedded payload")
)

// Decoder recovers a payload embedded by Encoder from the least significant bits of a bitmap's color channels.
type Decoder struct {
	image *bmp.Image

	stats model.ExtractStats
}

func NewDecoder(image *bmp.Image) *Decoder {
	return &Decoder{
		image: image,
	}
}

func (d *Decoder) Stats() model.ExtractStats {
	return d.stats
}

// Extract walks pixel records in file order, collecting the low bit of every usable channel and grouping the bits
// into bytes, first bit most significant. The first fully assembled zero byte ends the payload and is excluded
// from it. Pixels may instead run out mid-group with only zero bits collected so far; that partial group is the
// clipped terminator of an embed that filled the image exactly, and the payload is complete. Any other exhaustion
// means no terminator was embedded.
func (d *Decoder) Extract() ([]byte, error) {
	d.stats = model.ExtractStats{}

	pixels := d.setupPixelView()
	return d.extractPayloadBits(pixels)
}

func (d *Decoder) setupPixelView() [][]byte {
	setupStart := time.Now()
	defer func() {
		d.stats.Setup = time.Since(setupStart)
	}()

	return bmp.ReadPixels(d.image)
}

func (d *Decoder) extractPayloadBits(pixels [][]byte) (payload []byte, retErr error) {
	extractStart := time.Now()
	defer func() {
		d.stats.DataExtraction = time.Since(extractStart)
	}()

	payload = make([]byte, 0, d.image.Capacity())
	asm := bits.NewByteAssembler()
	base := d.image.ColorChannelOffset()
	for _, record := range pixels {
		for ch := base; ch < base+bmp.UsableChannels; ch++ {
			assembledByte, complete := asm.WriteBit(record[ch] & 1)
			if !complete {
				continue
			}
			if assembledByte == terminator {
				return payload, nil
			}
			payload = append(payload, assembledByte)
		}
	}

	if asm.PendingBits() > 0 && asm.PendingZero() {
		return payload, nil
	}
	return nil, fmt.Errorf("%w: scanned %d pixels without assembling a zero byte", ErrTerminatorNotFound, d.image.PixelCount())
}
