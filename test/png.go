package test

import (
	"bytes"
	"encoding/binary"
	"github.com/klauspost/compress/zlib"
	"hash/crc32"
)

// BuildPNG assembles a png container with a header chunk, one zlib-deflated image-data chunk and an end chunk,
// all with correct checksums.
func BuildPNG(width, height uint32, bitDepth, colorCode byte, rawImageData []byte) []byte {
	headerData := make([]byte, 13)
	binary.BigEndian.PutUint32(headerData[0:4], width)
	binary.BigEndian.PutUint32(headerData[4:8], height)
	headerData[8] = bitDepth
	headerData[9] = colorCode

	var compressed bytes.Buffer
	deflater := zlib.NewWriter(&compressed)
	if _, err := deflater.Write(rawImageData); err != nil {
		panic(err)
	}
	if err := deflater.Close(); err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	buf.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'})
	writePNGChunk(&buf, "IHDR", headerData)
	writePNGChunk(&buf, "IDAT", compressed.Bytes())
	writePNGChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

func writePNGChunk(buf *bytes.Buffer, chunkType string, data []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	buf.Write(length[:])
	buf.WriteString(chunkType)
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	var crcBytes [4]byte
	binary.BigEndian.PutUint32(crcBytes[:], crc.Sum32())
	buf.Write(crcBytes[:])
}
