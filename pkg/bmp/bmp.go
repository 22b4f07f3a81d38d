// Package bmp implements parsing and reserialization of uncompressed bitmap images at the level of detail needed
// for pixel-byte steganography: the pixel data offset, the image dimensions and the pixel depth. Everything else
// in the file, including the entire format descriptor, is carried through untouched.
package bmp

import "errors"

const (
	fileHeaderLen = 14

	// header fields read from fixed offsets, all little-endian
	pixelDataOffsetFieldOffset = 10
	widthFieldOffset           = 18
	heightFieldOffset          = 22
	bitsPerPixelFieldOffset    = 28
	headerBytesNeeded          = 30

	// UsableChannels is the number of channel bytes per pixel available for embedding. Color channels only; the
	// leading non-color channel of 32-bit pixels is never counted.
	UsableChannels = 3
)

var (
	ErrNotBitmap           = errors.New("not a bitmap")
	ErrTruncated           = errors.New("bitmap truncated")
	ErrBadPixelOffset      = errors.New("bad pixel data offset")
	ErrBadDimensions       = errors.New("bad bitmap dimensions")
	ErrUnsupportedDepth    = errors.New("unsupported bits per pixel")
	ErrMisalignedPixelData = errors.New("pixel data length is not a multiple of the pixel size")
)

func readUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func readUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
