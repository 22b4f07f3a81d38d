package steg

import (
	"bsteg/internal/bits"
	"bsteg/pkg/bmp"
	"bsteg/pkg/model"
	"errors"
	"fmt"
	"time"
)

const (
	// terminator ends the embedded bit stream. Extraction scans for it, so a payload that contains a zero byte of
	// its own cannot round-trip.
	terminator = byte(0)
)

var (
	ErrPayloadTooLarge = errors.New("supplied image not big enough to hold the supplied payload, either choose a larger image or shorten the payload")
)

// Encoder hides a byte payload in the least significant bits of a bitmap's color channels, one bit per channel.
// The source image is left untouched; Embed builds a modified copy exposed through Image and Bytes.
type Encoder struct {
	image   *bmp.Image
	encoded *bmp.Image

	stats model.EmbedStats
}

func NewEncoder(image *bmp.Image) *Encoder {
	return &Encoder{
		image: image,
	}
}

func (e *Encoder) Stats() model.EmbedStats {
	return e.stats
}

// Image returns the modified copy produced by the last successful Embed, or nil before one.
func (e *Encoder) Image() *bmp.Image {
	return e.encoded
}

// Embed writes payload into the image. The payload followed by the terminator is flattened to bits, most
// significant first with byte order preserved, and spread across the usable channels of consecutive pixel
// records. Channels of the final touched record that the stream does not reach keep a cleared low bit; records
// beyond it, row padding and the non-color channel of 32-bit pixels stay byte-for-byte unchanged. A payload
// larger than the image capacity fails up front without touching any pixel bytes.
func (e *Encoder) Embed(payload []byte) error {
	e.stats = model.EmbedStats{}

	br, err := e.setupBitStream(payload)
	if err != nil {
		return err
	}

	e.embedBitsInPixels(br)
	return nil
}

func (e *Encoder) setupBitStream(payload []byte) (*bits.BitReader, error) {
	setupStart := time.Now()
	defer func() {
		e.stats.Setup = time.Since(setupStart)
	}()

	if capacity := e.image.Capacity(); len(payload) > capacity {
		return nil, fmt.Errorf("%w: payload is %d bytes, image holds %d", ErrPayloadTooLarge, len(payload), capacity)
	}

	streamBytes := make([]byte, 0, len(payload)+1)
	streamBytes = append(streamBytes, payload...)
	streamBytes = append(streamBytes, terminator)

	return bits.NewBitReader(streamBytes), nil
}

func (e *Encoder) embedBitsInPixels(br *bits.BitReader) {
	embedStart := time.Now()
	defer func() {
		e.stats.DataEmbedding = time.Since(embedStart)
	}()

	pixels := bmp.ReadPixels(e.image)
	base := e.image.ColorChannelOffset()
	for _, record := range pixels {
		if br.BitsLeftToRead() == 0 {
			break
		}
		for ch := base; ch < base+bmp.UsableChannels; ch++ {
			// Clear the least significant bit, then add the next stream bit if one remains
			record[ch] = (record[ch] >> 1) << 1
			if bit, ok := br.ReadBit(); ok {
				record[ch] |= bit
			}
		}
	}

	e.encoded = e.image.WithPixelData(bmp.WritePixels(e.image, pixels))
}

// Bytes reserializes the image produced by the last successful Embed.
func (e *Encoder) Bytes() []byte {
	containerEncodeStart := time.Now()
	defer func() {
		e.stats.ContainerEncoding = time.Since(containerEncodeStart)
	}()

	return e.encoded.Bytes()
}
