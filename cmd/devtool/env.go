package main

import (
	"github.com/urfave/cli/v2"

	"github.com/osse101/CharacterCreator_Go/internal/config"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func newCheckEnvCommand() *cli.Command {
	return &cli.Command{
		Name:  "check-env",
		Usage: "Validate the environment against the expected schema",
		Action: func(c *cli.Context) error {
			PrintHeader("Checking environment...")
			warnings, err := config.ValidateEnvWithWarnings()
			if err != nil {
				return err
			}
			if _, err := loadConfig(); err != nil {
				return err
			}
			for _, w := range warnings {
				PrintWarning("%s", w)
			}
			PrintSuccess("Environment OK (%d warnings)", len(warnings))
			return nil
		},
	}
}
