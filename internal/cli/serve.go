package cli

import (
	"bsteg/internal/server"
	"github.com/spf13/cobra"
)

func ServeAppCommand(opts *rootOpts) *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "bsteg serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if port == "" {
				port = cfg.Server.Port
			}
			return server.StartServer(port)
		},
	}

	command.Flags().StringVar(&port, "port", "", "Port on which to start the server. Defaults to the configured port")

	return command
}
