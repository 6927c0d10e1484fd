package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skedda-booker/internal/config"
)

func newListCmd() *cobra.Command {
	var configPath string

	c := &cobra.Command{
		Use:   "list",
		Short: "List configured facilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			color.Cyan("Facilities in %s:", configPath)
			for _, key := range cfg.FacilityKeys() {
				f := cfg.Facilities[key]
				fmt.Fprintf(os.Stdout, "  %-16s %-10s %s\n", key, f.SpaceID, f.Name)
			}
			return nil
		},
	}

	c.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the JSON config file")
	return c
}
