package main

import (
	"github.com/urfave/cli/v2"

	"github.com/osse101/CharacterCreator_Go/internal/database"
)

func newMigrateCommand() *cli.Command {
	migrator := func(c *cli.Context) (*database.Migrator, error) {
		dsn, err := connString(c)
		if err != nil {
			return nil, err
		}
		PrintInfo("Database: %s", redactPassword(dsn))
		return database.NewMigrator(dsn).WithLogger(gooseLogger{}), nil
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					m, err := migrator(c)
					if err != nil {
						return err
					}
					if err := m.Up(c.Context); err != nil {
						return err
					}
					PrintSuccess("Migrations applied")
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: func(c *cli.Context) error {
					m, err := migrator(c)
					if err != nil {
						return err
					}
					if err := m.Down(c.Context); err != nil {
						return err
					}
					PrintSuccess("Rolled back one migration")
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print applied and pending migrations",
				Action: func(c *cli.Context) error {
					m, err := migrator(c)
					if err != nil {
						return err
					}
					return m.Status(c.Context)
				},
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: func(c *cli.Context) error {
					m, err := migrator(c)
					if err != nil {
						return err
					}
					v, err := m.Version(c.Context)
					if err != nil {
						return err
					}
					PrintInfo("Schema version: %d", v)
					return nil
				},
			},
		},
	}
}

// gooseLogger prints goose output through the devtool UI helpers
type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...interface{}) { PrintError(format, v...) }
func (gooseLogger) Printf(format string, v ...interface{}) { PrintInfo(format, v...) }
