package model

// ChunkInfo describes one chunk of a chunked container in wire order.
type ChunkInfo struct {
	Type     string `json:"type"`
	Length   int    `json:"length"`
	Critical bool   `json:"critical"`
}

// InspectReport summarizes a chunked container: its header metadata, the chunk sequence, and how much image data
// it carries. The pixel count is approximate because scanline filter bytes are still interleaved with the
// decompressed data.
type InspectReport struct {
	Width            uint32      `json:"width"`
	Height           uint32      `json:"height"`
	BitDepth         uint8       `json:"bit_depth"`
	ColorModel       string      `json:"color_model"`
	Channels         int         `json:"channels"`
	Chunks           []ChunkInfo `json:"chunks"`
	CompressedSize   int         `json:"compressed_size"`
	DecompressedSize int         `json:"decompressed_size"`
	ApproxPixelCount int         `json:"approx_pixel_count"`
}
