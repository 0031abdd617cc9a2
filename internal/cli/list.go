package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pkgorder/pkg/manifest"
)

// listCommand creates the list command, which prints the manifests order
// would read without parsing them.
func (c *CLI) listCommand() *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List discovered package manifests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			cfg, err := loadConfig(c.configPath, root)
			if err != nil {
				return err
			}
			if len(cfg.Types) > 0 && !cmd.Flags().Changed("type") {
				types = cfg.Types
			}

			parsers, err := manifest.Select(types...)
			if err != nil {
				return err
			}
			paths, err := manifest.Discover(cmd.Context(), root, parsers...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			loggerFromContext(cmd.Context()).Debug("listed manifests", "root", root, "count", len(paths))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "manifest types to discover (package.json, Cargo.toml)")
	return cmd
}
