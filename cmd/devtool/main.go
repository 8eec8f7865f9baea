package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const appName = "devtool"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  appName,
		Usage: "CharacterCreator development tasks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-url",
				Usage:   "postgres connection string; built from DB_* when empty",
				EnvVars: []string{"DB_URL"},
			},
		},
		Commands: []*cli.Command{
			newMigrateCommand(),
			newCheckDBCommand(),
			newCheckEnvCommand(),
			newSeedCommand(),
			newCreateAdminCommand(),
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// connString resolves the database URL from --db-url or the app config
func connString(c *cli.Context) (string, error) {
	if url := c.String("db-url"); url != "" {
		return url, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.GetDBConnString(), nil
}

func usageError(format string, a ...any) error {
	return cli.Exit(fmt.Sprintf(format, a...), 2)
}
