package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "frontgen",
		Short:         "frontgen - fetch clients for the browser from OpenAPI specifications",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().Bool("no-color", false, "Disable coloured status output")
	root.AddCommand(GenerateCommand())

	return root
}
