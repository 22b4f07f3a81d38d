package pngchunk

import (
	"bytes"
	"encoding/binary"
	"github.com/klauspost/compress/zlib"
	"hash/crc32"
)

// appendChunk appends a well-formed chunk, CRC included, to out.
func appendChunk(out []byte, chunkType string, data []byte) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	out = append(out, length[:]...)
	out = append(out, chunkType...)
	out = append(out, data...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	var crcBytes [4]byte
	binary.BigEndian.PutUint32(crcBytes[:], crc.Sum32())
	return append(out, crcBytes[:]...)
}

// headerChunkData builds the 13 data bytes of a header chunk.
func headerChunkData(width, height uint32, bitDepth, colorCode byte) []byte {
	data := make([]byte, headerDataLen)
	binary.BigEndian.PutUint32(data[0:4], width)
	binary.BigEndian.PutUint32(data[4:8], height)
	data[8] = bitDepth
	data[9] = colorCode
	return data
}

func deflate(raw []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// buildPNG assembles a full container: the signature, a header chunk, the deflated rawImageData spread over
// idatChunks image-data chunks, and the end chunk.
func buildPNG(width, height uint32, bitDepth, colorCode byte, rawImageData []byte, idatChunks int) []byte {
	out := append([]byte{}, pngSignature...)
	out = appendChunk(out, "IHDR", headerChunkData(width, height, bitDepth, colorCode))

	compressed := deflate(rawImageData)
	chunkSize := (len(compressed) + idatChunks - 1) / idatChunks
	for start := 0; start < len(compressed); start += chunkSize {
		end := start + chunkSize
		if end > len(compressed) {
			end = len(compressed)
		}
		out = appendChunk(out, "IDAT", compressed[start:end])
	}
	return appendChunk(out, "IEND", nil)
}
