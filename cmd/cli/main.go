package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/cmd/cli/commands"
	"github.com/nmoyal/shiftpoint/internal/config"
	"github.com/nmoyal/shiftpoint/pkg/auth"
	"github.com/nmoyal/shiftpoint/pkg/postgres"
	"github.com/nmoyal/shiftpoint/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftpoint",
		Short: "Shiftpoint CLI - Manage launch points, shifts and assignments",
		Long:  `A CLI tool for administering recurring and one-off ambulance shifts, launch points, driver and vehicle assignments, and the volunteer shift picker.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Commands capture the AppContext pointer; initApp fills it in before
	// any RunE fires.
	app = &commands.AppContext{}

	rootCmd.AddCommand(commands.ScheduleCmd(app))
	rootCmd.AddCommand(commands.PickerCmd(app))
	rootCmd.AddCommand(commands.CreateLaunchPointCmd(app))
	rootCmd.AddCommand(commands.DeleteLaunchPointCmd(app))
	rootCmd.AddCommand(commands.CreatePermanentShiftCmd(app))
	rootCmd.AddCommand(commands.CreateShiftCmd(app))
	rootCmd.AddCommand(commands.CancelShiftCmd(app))
	rootCmd.AddCommand(commands.AssignDriverCmd(app))
	rootCmd.AddCommand(commands.AssignVehicleCmd(app))
	rootCmd.AddCommand(commands.RequestSlotCmd(app))
	rootCmd.AddCommand(commands.SearchUsersCmd(app))
	rootCmd.AddCommand(commands.MyShiftsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database and session source
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database

	app.Sessions = &configSession{accountID: app.Cfg.OperatorAccountID}

	return nil
}

// configSession resolves the current session from the configured operator
// account. An empty account id means no session.
type configSession struct {
	accountID string
}

func (s *configSession) Current(ctx context.Context) (auth.Identity, error) {
	if s.accountID == "" {
		return auth.Identity{}, auth.ErrUnauthorized
	}
	return auth.Identity{AccountID: s.accountID}, nil
}
