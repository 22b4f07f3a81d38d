package pngchunk

import (
	"bsteg/test"
	"errors"
	"strings"
	"testing"
)

func TestHeaderMetadata(t *testing.T) {
	t.Parallel()

	file, err := Decode(buildPNG(77, 33, 8, 6, test.GenerateRandomBytes(32), 1))
	if err != nil {
		t.Fatalf("Error decoding container: %s", err)
	}
	header, err := file.Header()
	if err != nil {
		t.Fatalf("Error reading header: %s", err)
	}

	if header.Width != 77 || header.Height != 33 {
		t.Errorf("Expected 77x33 dimensions, got %dx%d", header.Width, header.Height)
	}
	if header.BitDepth != 8 {
		t.Errorf("Expected bit depth 8, got %d", header.BitDepth)
	}
	if header.ColorCode != 6 {
		t.Errorf("Expected color code 6, got %d", header.ColorCode)
	}
}

func TestHeaderColorModels(t *testing.T) {
	t.Parallel()

	for code, expected := range map[byte]ColorModel{
		0: {Name: "greyscale", Channels: 1},
		2: {Name: "truecolour", Channels: 3},
		3: {Name: "indexed-colour", Channels: 1},
		4: {Name: "greyscale with alpha", Channels: 2},
		6: {Name: "truecolour with alpha", Channels: 4},
	} {
		data := append([]byte{}, pngSignature...)
		data = appendChunk(data, "IHDR", headerChunkData(1, 1, 8, code))

		file, err := Decode(data)
		if err != nil {
			t.Fatalf("Error decoding container with color code %d: %s", code, err)
		}
		header, err := file.Header()
		if err != nil {
			t.Fatalf("Error reading header with color code %d: %s", code, err)
		}
		if header.ColorModel != expected {
			t.Errorf("Expected color code %d to map to %+v, got %+v", code, expected, header.ColorModel)
		}
	}
}

func TestHeaderUnknownColorModel(t *testing.T) {
	t.Parallel()

	data := append([]byte{}, pngSignature...)
	data = appendChunk(data, "IHDR", headerChunkData(1, 1, 8, 7))

	file, err := Decode(data)
	if err != nil {
		t.Fatalf("Error decoding container: %s", err)
	}
	_, err = file.Header()
	if !errors.Is(err, ErrUnknownColorModel) {
		t.Fatalf("Expected unknown color model error, got %v", err)
	}
	if !strings.Contains(err.Error(), "code 7") {
		t.Errorf("Expected error %q to mention the offending code", err)
	}
}

func TestHeaderMissing(t *testing.T) {
	t.Parallel()

	shortHeader := append([]byte{}, pngSignature...)
	shortHeader = appendChunk(shortHeader, "IHDR", test.GenerateRandomBytes(5))

	for name, data := range map[string][]byte{
		"no chunks":         pngSignature,
		"short header data": shortHeader,
	} {
		t.Run(name, func(t *testing.T) {
			file, err := Decode(data)
			if err != nil {
				t.Fatalf("Error decoding container: %s", err)
			}
			if _, err = file.Header(); !errors.Is(err, ErrMissingHeader) {
				t.Fatalf("Expected missing header error, got %v", err)
			}
		})
	}
}
