// Command sessionctl manages users and sessions directly against the configured store backend.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"mysession/backend"
	"mysession/domain"
	"mysession/helpers"
	"mysession/interfaces"
	"mysession/service"

	"github.com/go-kit/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: error loading .env file: %v\n", err)
	}

	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env is an opened backend plus a session manager over it.
type env struct {
	stores  *backend.Stores
	manager interfaces.SessionManager
}

func openEnv(ctx context.Context, logOut io.Writer) (*env, error) {
	cfg, err := backend.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := helpers.NewLogger(logOut, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger = log.With(logger, "component", "sessionctl")

	stores, err := backend.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &env{
		stores:  stores,
		manager: backend.NewSessionManager(stores, cfg, service.NewMetrics(nil), logger),
	}, nil
}

// withEnv opens the backend around fn.
func withEnv(logOut io.Writer, fn func(ctx context.Context, cmd *cli.Command, e *env) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		e, err := openEnv(ctx, logOut)
		if err != nil {
			return err
		}
		defer e.stores.Close()
		return fn(ctx, cmd, e)
	}
}

func newApp(out, logOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "sessionctl",
		Usage:     "manage ride-booking login sessions",
		Writer:    out,
		ErrWriter: logOut,
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "log a user in and print the session key",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user-id", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: withEnv(logOut, func(ctx context.Context, cmd *cli.Command, e *env) error {
					res, err := e.manager.Login(ctx, cmd.Int64("user-id"), cmd.String("password"))
					if err != nil {
						return err
					}
					fmt.Fprintln(out, res.String())
					return nil
				}),
			},
			{
				Name:  "logout",
				Usage: "end the session holding a key",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "key", Required: true},
				},
				Action: withEnv(logOut, func(ctx context.Context, cmd *cli.Command, e *env) error {
					conf, err := e.manager.Logout(ctx, cmd.String("key"))
					if err != nil {
						return err
					}
					fmt.Fprintln(out, conf.Message)
					return nil
				}),
			},
			{
				Name:  "force-logout",
				Usage: "end a user's session if one exists",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user-id", Required: true},
				},
				Action: withEnv(logOut, func(ctx context.Context, cmd *cli.Command, e *env) error {
					conf, err := e.manager.ForceLogout(ctx, cmd.Int64("user-id"))
					if err != nil {
						return err
					}
					fmt.Fprintln(out, conf.Message)
					return nil
				}),
			},
			{
				Name:  "seed-user",
				Usage: "create or replace a user in a role partition",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "role", Value: string(domain.RoleCustomer), Usage: "customer, driver or admin"},
				},
				Action: withEnv(logOut, func(ctx context.Context, cmd *cli.Command, e *env) error {
					role, err := domain.ParseRole(cmd.String("role"))
					if err != nil {
						return err
					}
					user := domain.User{
						ID:       cmd.Int64("id"),
						Username: cmd.String("username"),
						Password: cmd.String("password"),
						Role:     role,
					}
					if err := e.stores.Users.Save(ctx, user); err != nil {
						return err
					}
					fmt.Fprintf(out, "Saved %s %d (%s).\n", user.Role, user.ID, user.Username)
					return nil
				}),
			},
			{
				Name:  "seed",
				Usage: "load users from a YAML seed file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true},
				},
				Action: withEnv(logOut, func(ctx context.Context, cmd *cli.Command, e *env) error {
					users, err := backend.LoadSeed(cmd.String("file"))
					if err != nil {
						return err
					}
					if err := backend.Seed(ctx, e.stores.Users, users); err != nil {
						return err
					}
					fmt.Fprintf(out, "Seeded %d users.\n", len(users))
					return nil
				}),
			},
		},
	}
}
