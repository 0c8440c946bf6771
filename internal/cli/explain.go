package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/errors"
)

func (c *CLI) explainCommand() *cobra.Command {
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   "explain <csv>",
		Short: "Explain which chart show would pick for two columns",
		Long: `Explain walks the chart selection rules for two columns and reports the
chart show would use. With -o, the decision tree is written as a diagram
with the path taken highlighted (.svg renders it, .dot writes Graphviz source).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, x, y, err := loadPair(args[0], &opts)
			if err != nil {
				return err
			}
			defer t.Release()
			defer x.Release()
			defer y.Release()

			printKeyValue("x", describeColumn(x))
			printKeyValue("y", describeColumn(y))

			kind, selErr := chart.SelectColumns(x, y)
			if selErr != nil {
				printKeyValue("chart", StyleWarning.Render("none"))
				printDetail("%s", errors.UserMessage(selErr))
			} else {
				printKeyValue("chart", StyleHighlight.Render(kind.String()))
			}

			if opts.output != "" {
				if err := writeDecision(cmd, opts.output, chart.DecisionDOT(x.Kind(), y.Kind(), x.Len())); err != nil {
					return err
				}
				printFile(opts.output)
			}
			return nil
		},
	}
	addPairFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the decision diagram (.svg or .dot)")
	return cmd
}

func writeDecision(cmd *cobra.Command, path, dot string) error {
	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".dot", ".gv":
		data = []byte(dot)
	case ".svg":
		svg, err := chart.RenderDecisionSVG(cmd.Context(), dot)
		if err != nil {
			return err
		}
		data = svg
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "decision diagram must be .svg or .dot, got %q", ext)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
