package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/showviz/pkg/buildinfo"
	"github.com/matzehuels/showviz/pkg/plot"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Showviz picks a chart for your columns and shows it",
		Long: `Showviz plots one or two columns of a CSV file. It chooses a scatter plot,
heat map, box plot or categorical heat map from the column types and size,
and displays it in the native rendering client or the browser viewer.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.setup(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/showviz/config.toml)")
	flags.StringVar(&c.target, "target", "", "display target: auto, gui, browser, none")
	_ = root.RegisterFlagCompletionFunc("target", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return plot.Targets, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(c.showCommand())
	for _, cmd := range c.pairCommands() {
		root.AddCommand(cmd)
	}
	root.AddCommand(c.histogramCommand())
	root.AddCommand(c.itemFrequencyCommand())
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.explainCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.locateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
