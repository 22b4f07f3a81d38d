package bmp

import "bytes"

// pixelOffset returns the byte offset of pixel record i within the pixel buffer, row-major at the resolved stride.
func (img *Image) pixelOffset(i int) int {
	row := i / img.width
	col := i % img.width
	return row*img.stride + col*img.bytesPerPixel
}

// ReadPixels materializes every pixel record of the image as subslices of a single fresh copy of the pixel
// buffer. Records can be mutated freely without affecting img, and row padding never appears in any record.
func ReadPixels(img *Image) [][]byte {
	buf := bytes.Clone(img.pix)
	records := make([][]byte, img.PixelCount())
	for i := range records {
		offset := img.pixelOffset(i)
		records[i] = buf[offset : offset+img.bytesPerPixel]
	}
	return records
}

// WritePixels reassembles pixel records into a flat pixel buffer laid out like img's. The result starts as a copy
// of img's buffer, so padding and trailing bytes survive unchanged, and each record is then copied back at its
// offset. Record lengths are not validated; callers keep them at bytes-per-pixel.
func WritePixels(img *Image, pixels [][]byte) []byte {
	out := bytes.Clone(img.pix)
	for i, record := range pixels {
		offset := img.pixelOffset(i)
		copy(out[offset:offset+img.bytesPerPixel], record)
	}
	return out
}
