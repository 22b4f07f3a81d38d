package steg

import (
	"bsteg/internal/bits"
	"bsteg/pkg/bmp"
	"bsteg/test"
	"bytes"
	"errors"
	"strings"
	"testing"
)

const testPixelDataOffset = 54

func TestEmbedWritesTerminatedBitStream(t *testing.T) {
	runCodecTestsWithAllPixelLayouts(t, func(t *testing.T, bitsPerPixel int, aligned bool) {
		img := decodeBitmap(t, test.BuildBitmap(21, 9, bitsPerPixel, aligned))
		payload := generatePayload(img.Capacity() - 10)

		encoder := NewEncoder(img)
		if err := encoder.Embed(payload); err != nil {
			t.Fatalf("Error embedding payload: %s", err)
		}

		expectedStream := append(append(make([]byte, 0, len(payload)+1), payload...), 0)
		checkEmbeddedImageAgainstExpectedStream(t, encoder.Image(), expectedStream)
	})
}

func TestEmbedOnlyTouchesUsableChannelLSBs(t *testing.T) {
	runCodecTestsWithAllPixelLayouts(t, func(t *testing.T, bitsPerPixel int, aligned bool) {
		const width, height = 21, 9
		data := test.BuildBitmap(width, height, bitsPerPixel, aligned)
		img := decodeBitmap(t, data)
		payload := generatePayload(img.Capacity() / 2)

		encoder := NewEncoder(img)
		if err := encoder.Embed(payload); err != nil {
			t.Fatalf("Error embedding payload: %s", err)
		}
		out := encoder.Bytes()
		if len(out) != len(data) {
			t.Fatalf("Expected embed to preserve the %d-byte file size, got %d bytes", len(data), len(out))
		}

		streamBits := (len(payload) + 1) * 8
		touchedRecords := (streamBits + bmp.UsableChannels - 1) / bmp.UsableChannels
		base := img.ColorChannelOffset()
		bytesPerPixel := bitsPerPixel / 8

		mayTouch := make([]bool, len(data))
		for i := 0; i < touchedRecords; i++ {
			offset := testPixelDataOffset + (i/width)*img.Stride() + (i%width)*bytesPerPixel
			for ch := base; ch < base+bmp.UsableChannels; ch++ {
				mayTouch[offset+ch] = true
			}
		}

		for j := range data {
			if mayTouch[j] {
				if data[j]>>1 != out[j]>>1 {
					t.Errorf("Expected byte %d to differ at most in its low bit, was %#02x, got %#02x", j, data[j], out[j])
				}
			} else if data[j] != out[j] {
				t.Errorf("Expected byte %d to be untouched, was %#02x, got %#02x", j, data[j], out[j])
			}
		}
	})
}

func TestEmbedPreservesNonColorChannels(t *testing.T) {
	for _, aligned := range []bool{false, true} {
		data := test.BuildBitmap(11, 6, 32, aligned)
		img := decodeBitmap(t, data)

		encoder := NewEncoder(img)
		if err := encoder.Embed(generatePayload(img.Capacity())); err != nil {
			t.Fatalf("Error embedding payload: %s", err)
		}

		inPixels := bmp.ReadPixels(img)
		outPixels := bmp.ReadPixels(encoder.Image())
		for i := range inPixels {
			if inPixels[i][0] != outPixels[i][0] {
				t.Errorf("Expected non-color channel of pixel %d to be untouched, was %#02x, got %#02x",
					i, inPixels[i][0], outPixels[i][0])
			}
		}
	}
}

func TestEmbedExactBitPattern(t *testing.T) {
	pix := bytes.Repeat([]byte{0xFF}, 24)
	img := decodeBitmap(t, test.BuildBitmapWithPixels(8, 1, 24, pix))

	encoder := NewEncoder(img)
	if err := encoder.Embed([]byte{0xFF}); err != nil {
		t.Fatalf("Error embedding payload: %s", err)
	}

	// one payload byte then the terminator: sixteen bits spread over pixels 1-6, the stream runs out two
	// channels into pixel 6 so those keep a cleared low bit, pixels 7-8 stay untouched
	expectedPix := []byte{
		0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFE,
		0xFE, 0xFE, 0xFE,
		0xFE, 0xFE, 0xFE,
		0xFE, 0xFE, 0xFE,
		0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF,
	}
	out := encoder.Bytes()
	if !bytes.Equal(out[testPixelDataOffset:], expectedPix) {
		t.Errorf("Expected pixel bytes\n%#v\ngot\n%#v", expectedPix, out[testPixelDataOffset:])
	}
}

func TestEmbedOverflowLeavesImageUntouched(t *testing.T) {
	runCodecTestsWithAllPixelLayouts(t, func(t *testing.T, bitsPerPixel int, aligned bool) {
		data := test.BuildBitmap(10, 10, bitsPerPixel, aligned)
		img := decodeBitmap(t, data)

		encoder := NewEncoder(img)
		err := encoder.Embed(generatePayload(img.Capacity() + 1))
		if !errors.Is(err, ErrPayloadTooLarge) {
			t.Fatalf("Expected ErrPayloadTooLarge embedding %d bytes into a %d byte image, got %v",
				img.Capacity()+1, img.Capacity(), err)
		}
		if !strings.Contains(err.Error(), "payload is 38 bytes") || !strings.Contains(err.Error(), "holds 37") {
			t.Errorf("Expected error to report payload size and capacity, got %q", err.Error())
		}
		if encoder.Image() != nil {
			t.Errorf("Expected no encoded image after a failed embed")
		}
		if !bytes.Equal(img.Bytes(), data) {
			t.Errorf("Expected source image to be untouched after a failed embed")
		}
	})
}

func checkEmbeddedImageAgainstExpectedStream(t *testing.T, img *bmp.Image, expectedStream []byte) {
	t.Helper()
	expectedBitReader := bits.NewBitReader(expectedStream)
	base := img.ColorChannelOffset()
	for recordIdx, record := range bmp.ReadPixels(img) {
		if expectedBitReader.BitsLeftToRead() == 0 {
			return
		}
		for ch := base; ch < base+bmp.UsableChannels; ch++ {
			expectedBit, ok := expectedBitReader.ReadBit()
			if !ok {
				expectedBit = 0 // channels past the stream keep a cleared low bit
			}
			if got := record[ch] & 1; got != expectedBit {
				t.Fatalf("Expected bit %d in pixel %d channel %d, got %d", expectedBit, recordIdx, ch, got)
			}
		}
	}
	if left := expectedBitReader.BitsLeftToRead(); left > 8 {
		t.Fatalf("Ran out of pixels with %d stream bits left to check", left)
	}
}
