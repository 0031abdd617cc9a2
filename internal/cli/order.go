package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/pkgorder/pkg/io"
	"github.com/matzehuels/pkgorder/pkg/order"
	"github.com/matzehuels/pkgorder/pkg/pipeline"
)

// orderOpts holds the command-line flags for the order command.
type orderOpts struct {
	format  string   // output format: text, json, yaml or table
	pin     []string // package names that start the arrangement
	types   []string // manifest types to discover
	input   string   // JSON or YAML records file that replaces discovery
	output  string   // output file path (stdout if empty)
	noCache bool     // bypass the order cache
}

// orderCommand creates the order command.
func (c *CLI) orderCommand() *cobra.Command {
	opts := orderOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "order [root]",
		Short: "Print packages in dependency order",
		Long: `Print every package below root (default ".") so that each package comes
after the packages it uses through dependencies or devDependencies.

Examples:
  pkgorder order                          # manifest paths, one per line
  pkgorder order ./monorepo --format table
  pkgorder order --pin core,cli           # start the arrangement with core, cli
  pkgorder order --input records.json -o order.json --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			cfg, err := loadConfig(c.configPath, root)
			if err != nil {
				return err
			}
			cfg.apply(cmd, &opts)
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runOrder(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, yaml or table")
	cmd.Flags().StringSliceVar(&opts.pin, "pin", nil, "package names that start the initial arrangement")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "manifest types to discover (package.json, Cargo.toml)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read package records from a JSON or YAML file instead of discovering manifests")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the order cache")

	return cmd
}

func (c *CLI) runOrder(cmd *cobra.Command, root string, opts orderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	start := time.Now()

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	pipeOpts := pipeline.Options{
		Root:    root,
		Types:   opts.types,
		Pin:     opts.pin,
		NoCache: opts.noCache,
		Logger:  logger,
	}

	pkgs, cached, err := orderPackages(ctx, runner, opts.input, pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Ordered %d packages", len(pkgs)))

	if opts.output == "" {
		return writeOrder(cmd.OutOrStdout(), opts.format, pkgs)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	if err := writeOrder(f, opts.format, pkgs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	status := cmd.ErrOrStderr()
	printSuccess(status, "Ordered %s packages", StyleNumber.Render(fmt.Sprint(len(pkgs))))
	printStats(status, len(pkgs), cached, time.Since(start))
	printFile(status, opts.output)
	return nil
}

// orderPackages orders the records in input, or the manifests under
// opts.Root when input is empty.
func orderPackages(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) ([]*order.Package, bool, error) {
	if input == "" {
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			return nil, false, err
		}
		return result.Packages, result.Cached, nil
	}

	pkgs, err := pkgio.ImportFile(input)
	if err != nil {
		return nil, false, err
	}
	return runner.Order(ctx, pkgs, opts)
}

func writeOrder(w io.Writer, format string, pkgs []*order.Package) error {
	switch format {
	case formatJSON:
		return pkgio.WriteJSON(w, pkgs)
	case formatYAML:
		return pkgio.WriteYAML(w, pkgs)
	case formatTable:
		_, err := fmt.Fprintln(w, orderTable(pkgs))
		return err
	default:
		return pkgio.WriteText(w, pkgs)
	}
}
