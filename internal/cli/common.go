package cli

import (
	appConfig "bsteg/internal/config"
	"bsteg/pkg/bmp"
	"bsteg/pkg/config"
	"github.com/briandowns/spinner"
	"os"
	"time"
)

// rootOpts carries the persistent flags every subcommand resolves its configuration through.
type rootOpts struct {
	configFile string
	stride     string
}

// loadConfig reads the application config file and lays the persistent flags over it.
func (o *rootOpts) loadConfig() (*appConfig.Config, error) {
	cfg, err := appConfig.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	if o.stride != "" {
		cfg.Bitmap.Stride = o.stride
	}
	return cfg, nil
}

func bitmapDecodeConfig(cfg *appConfig.Config) (config.BitmapDecodeConfig, error) {
	strideMode, err := config.ParseStrideMode(cfg.Bitmap.Stride)
	if err != nil {
		return config.BitmapDecodeConfig{}, err
	}
	return config.BitmapDecodeConfig{Stride: strideMode}, nil
}

func decodeBitmapFromFile(filePath string, decodeConfig config.BitmapDecodeConfig) (*bmp.Image, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return bmp.Decode(data, decodeConfig)
}

func NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond)
}
