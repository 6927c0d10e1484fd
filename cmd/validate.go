package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skedda-booker/internal/config"
)

func newValidateCmd() *cobra.Command {
	var configPath string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check the config file and report what a booking run would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			color.Green("✓ %s is valid", configPath)
			color.White("  base URL:   %s", cfg.URLs.BaseURL)
			color.White("  login URL:  %s", cfg.URLs.LoginURL)
			color.White("  facilities: %d", len(cfg.Facilities))
			if cfg.Credentials.Email == "" || cfg.Credentials.Password == "" {
				color.Yellow("  note: no default credentials; set them in the file or via SKEDDA_EMAIL/SKEDDA_PASSWORD")
			}
			return nil
		},
	}

	c.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the JSON config file")
	return c
}
