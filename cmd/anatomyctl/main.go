package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"text/tabwriter"

	"anatomy-explorer-backend/internal/config"
	"anatomy-explorer-backend/internal/database"
	"anatomy-explorer-backend/internal/lib/slogcustom"
	"anatomy-explorer-backend/internal/models"
	"anatomy-explorer-backend/internal/password"
	"anatomy-explorer-backend/internal/services"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

func main() {
	root := &cli.Command{
		Name:  "anatomyctl",
		Usage: "Administer the anatomy explorer database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file loaded before reading the environment"},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			createUserCommand(),
			listUsersCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema",
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := openDB(c)
			return err
		},
	}
}

func createUserCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-user",
		Usage: "Create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringFlag{Name: "privilege", Value: "user", Usage: "user, moderator or admin"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			privilege, err := parsePrivilege(c.String("privilege"))
			if err != nil {
				return err
			}
			db, err := openDB(c)
			if err != nil {
				return err
			}

			user, err := services.NewAuthService(db, password.Interactive).
				CreateUser(c.String("username"), c.String("password"), privilege)
			if errors.Is(err, services.ErrConflict) {
				return fmt.Errorf("username %q is taken", c.String("username"))
			}
			if err != nil {
				return err
			}
			fmt.Printf("created %s %q (id %d)\n", user.Privilege, user.Username, user.ID)
			return nil
		},
	}
}

func listUsersCommand() *cli.Command {
	return &cli.Command{
		Name:  "list-users",
		Usage: "List accounts",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			db, err := openDB(c)
			if err != nil {
				return err
			}
			users, err := services.NewAuthService(db, password.Interactive).ListUsers()
			if err != nil {
				return err
			}

			if c.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(users)
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tPRIVILEGE")
			for _, u := range users {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.Username, u.Privilege)
			}
			return tw.Flush()
		},
	}
}

func openDB(c *cli.Command) (*gorm.DB, error) {
	envFile := c.String("env-file")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slogcustom.NewCustomHandler(os.Stderr, cfg.SlogLevel())))

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func parsePrivilege(s string) (models.Privilege, error) {
	switch s {
	case "user":
		return models.PrivilegeUser, nil
	case "moderator", "mod":
		return models.PrivilegeModerator, nil
	case "admin", "administrator":
		return models.PrivilegeAdministrator, nil
	}
	return 0, fmt.Errorf("unknown privilege %q (want user, moderator or admin)", s)
}
