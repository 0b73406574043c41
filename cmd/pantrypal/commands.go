package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/jask/pantrypal/internal/config"
	"github.com/jask/pantrypal/internal/controller"
	"github.com/jask/pantrypal/internal/database"
	"github.com/jask/pantrypal/internal/database/repository"
	"github.com/jask/pantrypal/internal/service"
	"github.com/jask/pantrypal/internal/session"
	"github.com/jask/pantrypal/internal/testdata"
	"github.com/jask/pantrypal/internal/tui"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Start the terminal UI (default)",
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	e, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	user := e.cfg.User.Name
	if u := cmd.String("user"); u != "" {
		user = u
	}
	stores := controller.NewStores(e.store)
	if user != "" {
		if err := stores.Users.Ensure(ctx, user); err != nil {
			return fmt.Errorf("log in %q: %w", user, err)
		}
	}
	d := controller.Deps{Session: session.New(user), Logger: e.log, Metrics: e.metrics}
	app, err := controller.Wire(d, stores)
	if err != nil {
		return err
	}
	app.Login.Remember = func(name string) error {
		e.cfg.User.Name = name
		return config.SaveUser(e.cfgPath, name)
	}
	if err := app.Start(ctx); err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(app, e.log), tea.WithAltScreen(), tea.WithContext(ctx))
	if addr := e.cfg.Metrics.Listen; addr != "" {
		go func() {
			if err := e.metrics.Serve(ctx, addr); err != nil {
				e.log.Error("metrics listener", "addr", addr, "error", err)
				p.Send(tui.Failure(fmt.Errorf("metrics: %w", err)))
			}
		}()
	}
	e.log.Info("starting", "user", user, "driver", e.cfg.Database.Driver)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations and print the schema version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			v, dirty, err := database.MigrationVersion(e.db, e.store.Dialect())
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "schema version %d (dirty=%t)\n", v, dirty)
			return nil
		},
	}
}

func requireUser(e *env, cmd *cli.Command) (string, error) {
	if u := cmd.String("user"); u != "" {
		return u, nil
	}
	if e.cfg.User.Name != "" {
		return e.cfg.User.Name, nil
	}
	return "", errors.New("no user: pass --user or log in from the app first")
}

func recipeService(e *env) *service.RecipeService {
	return &service.RecipeService{
		Recipes: repository.NewRecipeRepo(e.store),
		Users:   repository.NewUserRepo(e.store),
	}
}

func importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import-recipes",
		Usage:     "Import recipes from a TOML file",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("import-recipes needs a FILE argument")
			}
			e, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			user, err := requireUser(e, cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			n, err := recipeService(e).Import(ctx, user, f)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			fmt.Fprintf(os.Stdout, "imported %d recipes for %s\n", n, user)
			return nil
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export-recipes",
		Usage: "Write the user's recipes as TOML",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			user, err := requireUser(e, cmd)
			if err != nil {
				return err
			}
			out := os.Stdout
			if path := cmd.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			n, err := recipeService(e).Export(ctx, user, out)
			if err != nil {
				return err
			}
			e.log.Info("exported recipes", "user", user, "count", n)
			return nil
		},
	}
}

func resetCmd() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Delete all users, shelves, shopping lists and recipes",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "catalog", Usage: "also clear the grocery catalog"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !cmd.Bool("yes") {
				return errors.New("reset deletes every user's data; rerun with --yes")
			}
			e, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			m := &service.MaintenanceService{DB: e.db}
			if err := m.Reset(ctx, cmd.Bool("catalog")); err != nil {
				return err
			}
			if !cmd.Bool("catalog") {
				fmt.Fprintln(os.Stdout, "reset done")
				return nil
			}
			if err := repository.NewCatalogRepo(e.store).SeedDefaults(ctx); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "reset done, catalog reseeded")
			return nil
		},
	}
}

func demoCmd() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Create a user with sample shelves, shopping list and recipes",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "seed", Value: 1, Usage: "random seed for quantities"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			user := cmd.String("user")
			if user == "" {
				user = "demo"
			}
			repos := testdata.Repos{
				Users:    repository.NewUserRepo(e.store),
				Catalog:  repository.NewCatalogRepo(e.store),
				Shelves:  repository.NewShelfRepo(e.store),
				Shopping: repository.NewShoppingListRepo(e.store),
				Recipes:  repository.NewRecipeRepo(e.store),
			}
			if err := testdata.Seed(ctx, repos, user, uint64(cmd.Uint("seed"))); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "sample data created; start with: pantrypal --user %s\n", user)
			return nil
		},
	}
}
