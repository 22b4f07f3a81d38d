package cli

import (
	"bsteg/pkg/config"
	"bsteg/pkg/model"
	"bsteg/pkg/pngchunk"
	"encoding/json"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"os"
)

func inspectCommand() *cobra.Command {
	var format string

	inspectCmd := &cobra.Command{
		Use:     "inspect <file>",
		Example: "bsteg inspect image.png",
		Short:   "Inspect the chunk structure of a png image",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectImage(cmd, args[0], format)
		},
	}

	inspectCmd.Flags().StringVar(&format, "format", "text", "Output format. Options are text, json")

	return inspectCmd
}

func inspectImage(cmd *cobra.Command, imagePath, format string) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}

	report, err := pngchunk.Inspect(data, config.InspectConfig{})
	if err != nil {
		return err
	}

	switch format {
	case "text":
		printInspectReport(cmd, report)
		return nil
	case "json":
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	default:
		return fmt.Errorf("unknown output format %q, options are text, json", format)
	}
}

func printInspectReport(cmd *cobra.Command, report model.InspectReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dimensions: %dx%d\n", report.Width, report.Height)
	fmt.Fprintf(out, "Color model: %s (%d channels at %d bits each)\n", report.ColorModel, report.Channels, report.BitDepth)
	fmt.Fprintf(out, "Image data: %s compressed, %s decompressed, roughly %d pixels\n",
		humanize.Bytes(uint64(report.CompressedSize)), humanize.Bytes(uint64(report.DecompressedSize)), report.ApproxPixelCount)
	fmt.Fprintln(out, "Chunks:")
	for _, chunk := range report.Chunks {
		marker := " "
		if chunk.Critical {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s %s\n", marker, chunk.Type, humanize.Bytes(uint64(chunk.Length)))
	}
}
