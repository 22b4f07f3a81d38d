package pngchunk

import (
	"encoding/binary"
	"fmt"
)

// ColorModel names a color-model code and how many channels it stores per pixel.
type ColorModel struct {
	Name     string
	Channels int
}

var colorModels = map[byte]ColorModel{
	0: {Name: "greyscale", Channels: 1},
	2: {Name: "truecolour", Channels: 3},
	3: {Name: "indexed-colour", Channels: 1},
	4: {Name: "greyscale with alpha", Channels: 2},
	6: {Name: "truecolour with alpha", Channels: 4},
}

const colorCodeTruecolourAlpha = byte(6)

const headerDataLen = 13

// Header carries the fixed-offset metadata of the leading header chunk.
type Header struct {
	Width      uint32
	Height     uint32
	BitDepth   byte
	ColorCode  byte
	ColorModel ColorModel
}

// Header decodes the first chunk as the image header. That the first chunk really is the header type is assumed,
// not verified; its data is read at fixed offsets.
func (f *File) Header() (Header, error) {
	if len(f.chunks) == 0 {
		return Header{}, fmt.Errorf("%w: file has no chunks", ErrMissingHeader)
	}
	first := f.chunks[0]
	if len(first.Data) < headerDataLen {
		return Header{}, fmt.Errorf("%w: first chunk %s has %d data bytes, a header needs %d",
			ErrMissingHeader, first.Type, len(first.Data), headerDataLen)
	}

	code := first.Data[9]
	colorModel, known := colorModels[code]
	if !known {
		return Header{}, fmt.Errorf("%w: code %d", ErrUnknownColorModel, code)
	}

	return Header{
		Width:      binary.BigEndian.Uint32(first.Data[0:4]),
		Height:     binary.BigEndian.Uint32(first.Data[4:8]),
		BitDepth:   first.Data[8],
		ColorCode:  code,
		ColorModel: colorModel,
	}, nil
}
