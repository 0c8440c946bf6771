package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/showviz/pkg/viewer"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the plot viewer for the browser target",
		Long: `Serve stored plots over HTTP. Commands run with --target browser store
their plots in the configured store and print a link into this viewer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = c.Config.Viewer.Addr
			}

			printInfo("Viewer on %s", StyleLink.Render("http://"+addr))
			printDetail("store %s", c.Config.Store.Backend)

			srv := viewer.NewServer(s, loggerFromContext(ctx))
			if err := srv.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+viewer.DefaultAddr+")")
	return cmd
}
