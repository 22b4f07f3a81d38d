package config

const (
	// DefaultMaxDecompressedBytes caps how much inflated image data the chunk inspector will hold in memory at
	// once, since a small compressed stream can declare an enormous inflated size.
	DefaultMaxDecompressedBytes = 1024 * 1024 * 1024
)

type InspectConfig struct {
	MaxDecompressedBytes int64
}

func (c *InspectConfig) PopulateUnsetConfigVars() {
	if c.MaxDecompressedBytes < 1 {
		c.MaxDecompressedBytes = DefaultMaxDecompressedBytes
	}
}
