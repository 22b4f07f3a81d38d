// Package pngchunk walks the chunk structure of PNG files: signature check, per-chunk CRC verification, header
// metadata and image data inflation. It stops short of scanline unfiltering, so it inspects containers rather
// than reconstructing their pixels, and nothing can be embedded in or extracted from them.
package pngchunk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// chunkOverhead is the length, type and CRC fields around each chunk's data.
const chunkOverhead = 12

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

var (
	ErrNotPNG                = errors.New("not a png")
	ErrTruncatedChunk        = errors.New("png chunk truncated")
	ErrChecksumMismatch      = errors.New("png chunk checksum mismatch")
	ErrMissingHeader         = errors.New("missing header chunk")
	ErrUnknownColorModel     = errors.New("unknown color model")
	ErrUnsupportedColorModel = errors.New("unsupported color model")
	ErrDecompressedTooLarge  = errors.New("decompressed image data too large")
)

// Chunk is one record of the container: a 4-character type, its data, and the CRC that protected both on the
// wire. Chunks are never mutated after decoding.
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

var criticalChunkTypes = map[string]bool{
	"IHDR": true,
	"PLTE": true,
	"IDAT": true,
	"IEND": true,
}

// Critical reports whether the chunk's type is one of the four structural types required to decode the image.
func (c Chunk) Critical() bool {
	return criticalChunkTypes[c.Type]
}

// File is a parsed container holding its chunk sequence in wire order.
type File struct {
	chunks []Chunk
}

// Decode parses raw file bytes into the chunk sequence. The CRC-32 of every chunk is recomputed over its type
// and data and compared with the wire value, so a File only ever holds chunks that passed their integrity check.
func Decode(data []byte) (*File, error) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return nil, fmt.Errorf("%w: file does not start with the png signature", ErrNotPNG)
	}

	var chunks []Chunk
	for cursor := len(pngSignature); cursor < len(data); {
		if len(data)-cursor < 8 {
			return nil, fmt.Errorf("%w: need 8 bytes for the length and type fields at offset %d, have %d",
				ErrTruncatedChunk, cursor, len(data)-cursor)
		}
		length := int(binary.BigEndian.Uint32(data[cursor:]))
		chunkType := string(data[cursor+4 : cursor+8])
		if len(data)-cursor < chunkOverhead+length {
			return nil, fmt.Errorf("%w: %s at offset %d declares %d data bytes, %d bytes remain",
				ErrTruncatedChunk, chunkType, cursor, length, len(data)-cursor)
		}

		chunkData := data[cursor+8 : cursor+8+length]
		foundCRC := binary.BigEndian.Uint32(data[cursor+8+length:])
		crc := crc32.NewIEEE()
		crc.Write(data[cursor+4 : cursor+8])
		crc.Write(chunkData)
		if computedCRC := crc.Sum32(); computedCRC != foundCRC {
			return nil, fmt.Errorf("%w: %s at offset %d, computed 0x%08X, found 0x%08X",
				ErrChecksumMismatch, chunkType, cursor, computedCRC, foundCRC)
		}

		chunks = append(chunks, Chunk{Type: chunkType, Data: chunkData, CRC: foundCRC})
		cursor += chunkOverhead + length
	}

	return &File{chunks: chunks}, nil
}

// Chunks returns the chunk sequence in wire order.
func (f *File) Chunks() []Chunk {
	return f.chunks
}
