package cli

import (
	"fmt"

	"github.com/kolah/swagdecl/internal/codegen"
	"github.com/kolah/swagdecl/internal/config"
	"github.com/kolah/swagdecl/internal/resolver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one declaration file per operation",
		RunE:  runGenerateCmd,
	}

	config.BindOutputFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "Print declarations instead of writing files")
	cmd.Flags().String("path", "", "Only render the operation with this path name")

	return cmd
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	pathName, _ := cmd.Flags().GetString("path")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return generate(cmd, s, generateOptions{pathName: pathName, dryRun: dryRun})
}

type generateOptions struct {
	// pathName limits rendering to one operation when set.
	pathName string
	dryRun   bool
}

func generate(cmd *cobra.Command, s *session, opts generateOptions) error {
	result, err := s.load(cmd)
	if err != nil {
		return err
	}

	gen, err := codegen.New(s.cfg, s.logger)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}
	groups := gen.Tree(result.Document)

	var outputs []codegen.Output
	if opts.pathName != "" {
		node := resolver.FindByPathName(groups, opts.pathName)
		if node == nil {
			return fmt.Errorf("no operation with path name %q", opts.pathName)
		}
		out, err := gen.Render(node)
		if err != nil {
			return err
		}
		outputs = append(outputs, out)
	} else {
		outputs, err = gen.Generate(groups)
		if err != nil {
			return fmt.Errorf("generating declarations: %w", err)
		}
	}

	if opts.dryRun {
		for _, out := range outputs {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", out.Filename, out.Content)
		}
		return nil
	}

	results, err := codegen.Write(s.cfg.OutputDir, outputs)
	for _, r := range results {
		if r.Status == codegen.StatusUnchanged {
			cmd.PrintErrf("No change: %s\n", r.Path)
			continue
		}
		cmd.PrintErrf("Written: %s\n", r.Path)
	}
	if err != nil {
		return err
	}

	s.logger.Info("declarations generated",
		zap.String("output_dir", s.cfg.OutputDir),
		zap.Int("files", len(results)))
	return nil
}
