package cli

import (
	"github.com/kolah/swagdecl/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "swagdecl",
		Short:        "Generate TypeScript declaration namespaces from Swagger 2.0 documents",
		Version:      version,
		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	config.BindCommonFlags(root)
	root.AddCommand(
		TreeCommand(),
		GenerateCommand(),
		WatchCommand(),
	)

	return root
}
