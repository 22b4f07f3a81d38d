package steg

import (
	"bsteg/pkg/bmp"
	"bsteg/pkg/config"
	"bsteg/test"
	"fmt"
	"testing"
)

type testFunc func(t *testing.T, bitsPerPixel int, aligned bool)

// runCodecTestsWithAllPixelLayouts runs testFunc against every pixel layout the codec supports: 24- and 32-bit
// pixels, with packed and 4-byte aligned rows.
func runCodecTestsWithAllPixelLayouts(t *testing.T, testFunc testFunc) {
	for _, bitsPerPixel := range []int{24, 32} {
		bppCopy := bitsPerPixel
		t.Run(fmt.Sprintf("%dbpp", bitsPerPixel), func(t *testing.T) {
			t.Parallel()
			t.Run("packed", func(t *testing.T) {
				t.Parallel()
				testFunc(t, bppCopy, false)
			})
			t.Run("aligned", func(t *testing.T) {
				t.Parallel()
				testFunc(t, bppCopy, true)
			})
		})
	}
}

func decodeBitmap(t testing.TB, data []byte) *bmp.Image {
	t.Helper()
	img, err := bmp.Decode(data, config.BitmapDecodeConfig{})
	if err != nil {
		t.Fatalf("Error decoding test bitmap: %s", err)
	}
	return img
}

// generatePayload produces random payload bytes with zero bytes bumped out, since the terminator protocol cannot
// carry them.
func generatePayload(numOfBytes int) []byte {
	payload := test.GenerateRandomBytes(numOfBytes)
	for i, b := range payload {
		if b == 0 {
			payload[i] = 1
		}
	}
	return payload
}
