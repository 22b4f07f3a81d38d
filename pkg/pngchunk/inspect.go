package pngchunk

import (
	"bsteg/pkg/config"
	"bsteg/pkg/model"
)

// Inspect parses data and composes the full report: header metadata, the chunk sequence and the image data
// sizes. The pixel count is approximate because scanline filter bytes are still interleaved with the inflated
// data.
func Inspect(data []byte, cfg config.InspectConfig) (model.InspectReport, error) {
	file, err := Decode(data)
	if err != nil {
		return model.InspectReport{}, err
	}
	header, err := file.Header()
	if err != nil {
		return model.InspectReport{}, err
	}
	imageData, err := file.ImageData(cfg)
	if err != nil {
		return model.InspectReport{}, err
	}

	var compressedSize int
	chunkInfos := make([]model.ChunkInfo, 0, len(file.chunks))
	for _, chunk := range file.chunks {
		chunkInfos = append(chunkInfos, model.ChunkInfo{
			Type:     chunk.Type,
			Length:   len(chunk.Data),
			Critical: chunk.Critical(),
		})
		if chunk.Type == imageDataChunkType {
			compressedSize += len(chunk.Data)
		}
	}

	var approxPixelCount int
	if bytesPerPixel := header.ColorModel.Channels * int(header.BitDepth) / 8; bytesPerPixel > 0 {
		approxPixelCount = len(imageData) / bytesPerPixel
	}

	return model.InspectReport{
		Width:            header.Width,
		Height:           header.Height,
		BitDepth:         header.BitDepth,
		ColorModel:       header.ColorModel.Name,
		Channels:         header.ColorModel.Channels,
		Chunks:           chunkInfos,
		CompressedSize:   compressedSize,
		DecompressedSize: len(imageData),
		ApproxPixelCount: approxPixelCount,
	}, nil
}
