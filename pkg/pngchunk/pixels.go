package pngchunk

import (
	"bsteg/pkg/config"
	"bytes"
	"fmt"
	"github.com/klauspost/compress/zlib"
	"io"
)

const imageDataChunkType = "IDAT"

// ImageData inflates the concatenated data of all image-data chunks as a single zlib stream, capped by the
// configured limit. Only the 4-channel truecolour-with-alpha model is accepted. The result still interleaves one
// filter byte per scanline, since no unfiltering is performed.
func (f *File) ImageData(cfg config.InspectConfig) ([]byte, error) {
	cfg.PopulateUnsetConfigVars()

	header, err := f.Header()
	if err != nil {
		return nil, err
	}
	if header.ColorCode != colorCodeTruecolourAlpha {
		return nil, fmt.Errorf("%w: %s (code %d), only %s (code %d) image data can be read",
			ErrUnsupportedColorModel, header.ColorModel.Name, header.ColorCode,
			colorModels[colorCodeTruecolourAlpha].Name, colorCodeTruecolourAlpha)
	}

	var compressed bytes.Buffer
	for _, chunk := range f.chunks {
		if chunk.Type == imageDataChunkType {
			compressed.Write(chunk.Data)
		}
	}

	inflater, err := zlib.NewReader(&compressed)
	if err != nil {
		return nil, fmt.Errorf("inflating image data: %w", err)
	}
	defer inflater.Close()

	inflated, err := io.ReadAll(io.LimitReader(inflater, cfg.MaxDecompressedBytes+1))
	if err != nil {
		return nil, fmt.Errorf("inflating image data: %w", err)
	}
	if int64(len(inflated)) > cfg.MaxDecompressedBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrDecompressedTooLarge, cfg.MaxDecompressedBytes)
	}
	return inflated, nil
}
