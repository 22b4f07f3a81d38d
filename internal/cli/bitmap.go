package cli

import (
	"bsteg/pkg/steg"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"strings"
)

func checkCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:     "check <file>",
		Example: "bsteg check image.bmp",
		Short:   "Report how many payload bytes a bitmap can hold",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkImageCapacity(cmd, opts, args[0])
		},
	}
}

func checkImageCapacity(cmd *cobra.Command, opts *rootOpts, imagePath string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	decodeConfig, err := bitmapDecodeConfig(cfg)
	if err != nil {
		return err
	}

	image, err := decodeBitmapFromFile(imagePath, decodeConfig)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), image.Capacity())
	return nil
}

type storeOpts struct {
	outputFile string
	profileOpts
}

func storeCommand(opts *rootOpts) *cobra.Command {
	storeOpts := storeOpts{}

	storeCmd := &cobra.Command{
		Use:     "store <file> <text>",
		Example: "bsteg store image.bmp \"a note to keep\"",
		Short:   "Store a text payload inside the color channels of a bitmap image",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storeTextInImage(cmd, opts, storeOpts, args[0], args[1])
		},
	}

	storeCmd.Flags().StringVar(&storeOpts.outputFile, "output", "", "Name for the bitmap with the stored payload. Defaults to the input name with the configured suffix inserted before the extension")
	addProfilingFlags(storeCmd, &storeOpts.profileOpts)

	return storeCmd
}

func storeTextInImage(cmd *cobra.Command, opts *rootOpts, storeOpts storeOpts, imagePath, payload string) error {
	if strings.ContainsRune(payload, 0) {
		return errors.New("the payload cannot contain zero bytes, they delimit the embedded stream")
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	decodeConfig, err := bitmapDecodeConfig(cfg)
	if err != nil {
		return err
	}
	teardown, err := setupProfiling(storeOpts.profileOpts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer teardown()

	outputPath := storeOpts.outputFile
	if outputPath == "" {
		outputPath = modifiedPath(imagePath, cfg.Output.Suffix)
	}

	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()

	image, err := decodeBitmapFromFile(imagePath, decodeConfig)
	if err != nil {
		s.Stop()
		return err
	}

	encoder := steg.NewEncoder(image)

	s.Prefix = "Embedding payload "
	if err = encoder.Embed([]byte(payload)); err != nil {
		s.Stop()
		return err
	}

	s.Prefix = "Writing output bitmap "
	encodedImage := encoder.Bytes()
	if err = os.WriteFile(outputPath, encodedImage, 0664); err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("Stored %s of payload in %s\n", humanize.Bytes(uint64(len(payload))), outputPath)
	s.Stop()

	stats := encoder.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "Encoder setup time: %s\n", stats.Setup)
	fmt.Fprintf(cmd.OutOrStdout(), "Payload embed time: %s\n", stats.DataEmbedding)
	fmt.Fprintf(cmd.OutOrStdout(), "Output bitmap encode time: %s\n", stats.ContainerEncoding)
	return nil
}

func retrieveCommand(opts *rootOpts) *cobra.Command {
	retrieveOpts := profileOpts{}

	retrieveCmd := &cobra.Command{
		Use:     "retrieve <file>",
		Example: "bsteg retrieve image.mod.bmp",
		Short:   "Retrieve the text payload stored in a bitmap image",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return retrieveTextFromImage(cmd, opts, retrieveOpts, args[0])
		},
	}

	addProfilingFlags(retrieveCmd, &retrieveOpts)

	return retrieveCmd
}

func retrieveTextFromImage(cmd *cobra.Command, opts *rootOpts, profOpts profileOpts, imagePath string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	decodeConfig, err := bitmapDecodeConfig(cfg)
	if err != nil {
		return err
	}
	teardown, err := setupProfiling(profOpts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer teardown()

	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()

	image, err := decodeBitmapFromFile(imagePath, decodeConfig)
	if err != nil {
		s.Stop()
		return err
	}

	s.Prefix = "Extracting payload "
	payload, err := steg.NewDecoder(image).Extract()
	if err != nil {
		s.Stop()
		return err
	}
	s.Stop()

	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}

// modifiedPath inserts the suffix between the file name and its extension, so image.bmp becomes
// image.<suffix>.bmp.
func modifiedPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "." + suffix + ext
}
