package bmp

import (
	"bsteg/pkg/config"
	"fmt"
)

// Image is a parsed bitmap split into its three regions: the fixed file header, the format descriptor and the
// pixel data. The first two are never mutated; pixel data is replaced wholesale by an embed. Slices reference the
// buffer passed to Decode, which the caller must not modify while the Image is in use.
type Image struct {
	header     []byte
	descriptor []byte
	pix        []byte

	width         int
	height        int
	bytesPerPixel int
	stride        int
}

// Decode parses a bitmap from raw file bytes. The magic identifier is checked before any other header field is
// read. Validation then covers only what this codec relies on: dimensions, pixel depth, and the location and size
// of the pixel data. The descriptor's declared sub-type is not checked, so descriptors of unexpected variants
// yield undefined pixel interpretation.
func Decode(data []byte, cfg config.BitmapDecodeConfig) (*Image, error) {
	cfg.PopulateUnsetConfigVars()

	if len(data) < 2 || data[0] != 'B' || data[1] != 'M' {
		return nil, fmt.Errorf("%w: file does not start with BM", ErrNotBitmap)
	}
	if len(data) < headerBytesNeeded {
		return nil, fmt.Errorf("%w: %d bytes is too short for the header", ErrTruncated, len(data))
	}

	pixelDataOffset := int(readUint32(data[pixelDataOffsetFieldOffset:]))
	if pixelDataOffset < fileHeaderLen {
		return nil, fmt.Errorf("%w: %d points inside the %d-byte file header", ErrBadPixelOffset, pixelDataOffset, fileHeaderLen)
	}
	if pixelDataOffset > len(data) {
		return nil, fmt.Errorf("%w: %d is beyond the %d-byte file", ErrBadPixelOffset, pixelDataOffset, len(data))
	}

	width := int(int32(readUint32(data[widthFieldOffset:])))
	height := int(int32(readUint32(data[heightFieldOffset:])))
	if width <= 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if height < 0 {
		// a negative height declares top-down row order, which changes nothing at the pixel byte level
		height = -height
	}

	bitsPerPixel := int(readUint16(data[bitsPerPixelFieldOffset:]))
	if bitsPerPixel != 24 && bitsPerPixel != 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, bitsPerPixel)
	}

	img := &Image{
		header:        data[:fileHeaderLen],
		descriptor:    data[fileHeaderLen:pixelDataOffset],
		pix:           data[pixelDataOffset:],
		width:         width,
		height:        height,
		bytesPerPixel: bitsPerPixel / 8,
	}
	if err := img.resolveStride(cfg.Stride); err != nil {
		return nil, err
	}

	return img, nil
}

func (img *Image) resolveStride(mode config.StrideMode) error {
	packed := img.width * img.bytesPerPixel
	aligned := (packed + 3) &^ 3

	switch mode {
	case config.StridePacked:
		img.stride = packed
	case config.StrideAligned:
		img.stride = aligned
	default:
		switch {
		case len(img.pix) == img.height*packed:
			img.stride = packed
		case len(img.pix) >= img.height*aligned:
			img.stride = aligned
		default:
			img.stride = packed
		}
	}

	if img.stride == packed && len(img.pix)%img.bytesPerPixel != 0 {
		return fmt.Errorf("%w: %d bytes of pixel data with %d bytes per pixel", ErrMisalignedPixelData, len(img.pix), img.bytesPerPixel)
	}
	if needed := (img.height-1)*img.stride + packed; len(img.pix) < needed {
		return fmt.Errorf("%w: pixel data has %d bytes, %dx%d pixels at stride %d need %d",
			ErrTruncated, len(img.pix), img.width, img.height, img.stride, needed)
	}
	return nil
}

func (img *Image) Width() int {
	return img.width
}

// Height is always positive; top-down files have their declared negative height folded at decode time.
func (img *Image) Height() int {
	return img.height
}

func (img *Image) BytesPerPixel() int {
	return img.bytesPerPixel
}

// Stride is the byte distance between the starts of consecutive pixel rows.
func (img *Image) Stride() int {
	return img.stride
}

func (img *Image) PixelCount() int {
	return img.width * img.height
}

// Capacity returns how many payload bytes fit in the image at one bit per usable channel. The extra channel of
// 32-bit pixels contributes nothing, so the result depends only on the dimensions.
func (img *Image) Capacity() int {
	return img.width * img.height * UsableChannels / 8
}

// ColorChannelOffset returns the index of the first color channel within a pixel record. 4-byte records lead with
// a non-color channel that embedding must never touch.
func (img *Image) ColorChannelOffset() int {
	if img.bytesPerPixel == 4 {
		return 1
	}
	return 0
}

// Bytes reserializes the image by concatenating the fixed header, the format descriptor and the pixel data. An
// image that was never modified serializes back to its exact input bytes, and an embed changes neither region
// sizes nor their order, so header fields like the declared file size stay valid without recomputation.
func (img *Image) Bytes() []byte {
	out := make([]byte, 0, len(img.header)+len(img.descriptor)+len(img.pix))
	out = append(out, img.header...)
	out = append(out, img.descriptor...)
	out = append(out, img.pix...)
	return out
}

// WithPixelData returns a copy of the image backed by pix, leaving the receiver untouched. The buffer must keep
// the original pixel data length.
func (img *Image) WithPixelData(pix []byte) *Image {
	out := *img
	out.pix = pix
	return &out
}
