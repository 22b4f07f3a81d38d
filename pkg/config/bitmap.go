package config

import "fmt"

// StrideMode selects how the distance between the starts of consecutive pixel rows is derived when decoding a
// bitmap. Tightly packed rows are what this codec's own output uses; general bitmap writers align each row to a
// 4-byte boundary.
type StrideMode byte

const (
	// StrideAuto infers the stride from the size of the pixel buffer.
	StrideAuto StrideMode = iota
	// StridePacked treats rows as tightly packed at width * bytes-per-pixel.
	StridePacked
	// StrideAligned pads each row to a 4-byte boundary.
	StrideAligned
)

var strideModeNames = map[StrideMode]string{
	StrideAuto:    "auto",
	StridePacked:  "packed",
	StrideAligned: "aligned",
}

func (m StrideMode) String() string {
	if name, known := strideModeNames[m]; known {
		return name
	}
	return fmt.Sprintf("stride(%d)", byte(m))
}

// ParseStrideMode maps the textual stride flag values to a StrideMode.
func ParseStrideMode(name string) (StrideMode, error) {
	for mode, modeName := range strideModeNames {
		if name == modeName {
			return mode, nil
		}
	}
	return StrideAuto, fmt.Errorf("unknown stride mode %q, options are auto, packed, aligned", name)
}

type BitmapDecodeConfig struct {
	Stride StrideMode
}

func (c *BitmapDecodeConfig) PopulateUnsetConfigVars() {
	if c.Stride > StrideAligned {
		c.Stride = StrideAuto
	}
}
