package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/urfave/cli/v2"
)

const (
	defaultDBAttempts = 30
	dbRetryInterval   = 2 * time.Second
	dbPingTimeout     = 3 * time.Second
)

func newCheckDBCommand() *cli.Command {
	return &cli.Command{
		Name:    "check-db",
		Aliases: []string{"wait-for-db"},
		Usage:   "Wait for the database to accept connections",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "attempts", Value: defaultDBAttempts, Usage: "connection attempts before giving up"},
		},
		Action: func(c *cli.Context) error {
			PrintHeader("Checking database...")
			dsn, err := connString(c)
			if err != nil {
				return err
			}
			PrintInfo("Database: %s", redactPassword(dsn))

			attempts := c.Int("attempts")
			for i := 1; i <= attempts; i++ {
				err = pingDB(c.Context, dsn)
				if err == nil {
					PrintSuccess("Database is ready")
					return nil
				}
				fmt.Printf("Database not ready (%d/%d): %v\n", i, attempts, err)
				if i < attempts {
					time.Sleep(dbRetryInterval)
				}
			}
			return fmt.Errorf("database failed to become ready after %d attempts: %w", attempts, err)
		},
	}
}

func pingDB(ctx context.Context, dsn string) error {
	ctx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}
