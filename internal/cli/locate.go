package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/showviz/pkg/client"
)

func (c *CLI) locateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Print where the rendering client is expected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			installDir := c.Config.ClientDir
			if installDir == "" {
				installDir = client.InstallDir()
			}
			printKeyValue("platform", client.CurrentPlatform().String())
			printKeyValue("install dir", installDir)

			path, err := c.locator().Locate()
			if err != nil {
				return err
			}
			printKeyValue("client", path)

			if _, err := os.Stat(path); err != nil {
				printWarning("client not found at this path")
				return nil
			}
			printSuccess("client found")
			return nil
		},
	}
}
