package bmp

import (
	"math/rand"
)

const (
	infoHeaderLen = 40
	paddingMarker = 0xA5
)

func putUint16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// buildBitmapWithPixels assembles a bitmap file around the supplied pixel bytes: 14-byte file header with the BM
// magic, then a 40-byte info header carrying the dimensions and depth.
func buildBitmapWithPixels(width, height, bitsPerPixel int, pix []byte) []byte {
	fileLen := fileHeaderLen + infoHeaderLen + len(pix)
	data := make([]byte, fileHeaderLen+infoHeaderLen, fileLen)
	data[0], data[1] = 'B', 'M'
	putUint32(data[2:], uint32(fileLen))
	putUint32(data[10:], uint32(fileHeaderLen+infoHeaderLen))
	putUint32(data[14:], infoHeaderLen)
	putUint32(data[18:], uint32(int32(width)))
	putUint32(data[22:], uint32(int32(height)))
	putUint16(data[26:], 1)
	putUint16(data[28:], uint16(bitsPerPixel))
	return append(data, pix...)
}

// randomPixelData generates pixel rows filled with random bytes. Aligned rows are padded to a 4-byte boundary
// with a marker value so tests can verify padding is left alone.
func randomPixelData(width, height, bitsPerPixel int, aligned bool) []byte {
	rowLen := width * bitsPerPixel / 8
	stride := rowLen
	if aligned {
		stride = (rowLen + 3) &^ 3
	}
	pix := make([]byte, height*stride)
	for y := 0; y < height; y++ {
		row := pix[y*stride : y*stride+stride]
		rand.Read(row[:rowLen])
		for i := rowLen; i < stride; i++ {
			row[i] = paddingMarker
		}
	}
	return pix
}

func buildBitmap(width, height, bitsPerPixel int, aligned bool) []byte {
	return buildBitmapWithPixels(width, height, bitsPerPixel, randomPixelData(width, height, bitsPerPixel, aligned))
}
