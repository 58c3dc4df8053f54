package cli

import (
	"fmt"
	"strings"

	"github.com/kolah/swagdecl/internal/codegen"
	"github.com/kolah/swagdecl/internal/resolver"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"
)

func TreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the operation tree grouped by tag",
		RunE:  runTree,
	}

	cmd.Flags().String("format", "text", "Output format: text, yaml")

	return cmd
}

func runTree(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "yaml" {
		return fmt.Errorf("invalid format: %s (valid: text, yaml)", format)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.load(cmd)
	if err != nil {
		return err
	}

	gen, err := codegen.New(s.cfg, s.logger)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}
	groups := gen.Tree(result.Document)

	if format == "yaml" {
		out, err := yaml.Marshal(groups)
		if err != nil {
			return fmt.Errorf("encoding tree: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), formatTree(groups))
	return err
}

func formatTree(groups []*resolver.Group) string {
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%s (%d)\n", g.Title, len(g.Children))
		for _, node := range g.Children {
			fmt.Fprintf(&b, "  %-7s %s  %s", strings.ToUpper(string(node.Method)), node.Path, node.PathName)
			if node.Title != "" {
				fmt.Fprintf(&b, "  %s", node.Title)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
