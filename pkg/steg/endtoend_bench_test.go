package steg

import (
	"bsteg/test"
	"fmt"
	"testing"
)

const (
	benchImageWidth  = 1920
	benchImageHeight = 1080
)

func BenchmarkEmbed(b *testing.B) {
	for _, bitsPerPixel := range []int{24, 32} {
		img := decodeBitmap(b, test.BuildBitmap(benchImageWidth, benchImageHeight, bitsPerPixel, false))
		payload := generatePayload(img.Capacity() - 1)
		b.Run(fmt.Sprintf("%dbpp", bitsPerPixel), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for i := 0; i < b.N; i++ {
				encoder := NewEncoder(img)
				if err := encoder.Embed(payload); err != nil {
					b.Fatalf("Error during embed benchmark: %s", err)
				}
			}
		})
	}
}

func BenchmarkExtract(b *testing.B) {
	for _, bitsPerPixel := range []int{24, 32} {
		img := decodeBitmap(b, test.BuildBitmap(benchImageWidth, benchImageHeight, bitsPerPixel, false))
		payload := generatePayload(img.Capacity() - 1)
		encoder := NewEncoder(img)
		if err := encoder.Embed(payload); err != nil {
			b.Fatalf("Error embedding payload for extract benchmark: %s", err)
		}
		encoded := encoder.Image()
		b.Run(fmt.Sprintf("%dbpp", bitsPerPixel), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for i := 0; i < b.N; i++ {
				if _, err := NewDecoder(encoded).Extract(); err != nil {
					b.Fatalf("Error during extract benchmark: %s", err)
				}
			}
		})
	}
}
