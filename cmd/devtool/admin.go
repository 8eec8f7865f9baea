package main

import (
	"github.com/urfave/cli/v2"

	"github.com/osse101/CharacterCreator_Go/internal/user"
)

func newCreateAdminCommand() *cli.Command {
	return &cli.Command{
		Name:      "create-admin",
		Usage:     "Create an account with ROLE_ADMIN, or promote an existing one",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return usageError("unexpected arguments: %v", c.Args().Slice())
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pool, repos, err := openRepositories(c.Context, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := user.NewService(repos.User, user.DefaultCacheConfig())
			admin, err := svc.EnsureAdmin(c.Context, user.RegisterRequest{
				Username: c.String("username"),
				Email:    c.String("email"),
				Password: c.String("password"),
			})
			if err != nil {
				return err
			}
			PrintSuccess("Administrator %s (id %d) ready", admin.Username, admin.ID)
			return nil
		},
	}
}
