package remind

import (
	"fmt"

	"github.com/spf13/cobra"

	"extinsia/internal/application/notification"
	"extinsia/internal/infrastructure/config"
	"extinsia/internal/infrastructure/database"
	"extinsia/internal/infrastructure/email"
	"extinsia/internal/infrastructure/repository"
	"extinsia/internal/shared/logger"
)

var (
	env   string
	month string
)

// NewCommand builds the renewal reminder command. It is meant to be run
// from cron towards the end of each month; with no --month flag it
// targets the next calendar month.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send renewal reminder emails",
		Long:  `Collect the customers whose yearly extinguisher renewal falls in the given month and email a digest to every admin account.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Renewal month in Spanish (default: next calendar month)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	customerRepo := repository.NewCustomerRepository(database.Get())
	userRepo := repository.NewUserRepository(database.Get())
	sender := email.NewSMTPSender(&cfg.Email)

	service := notification.NewReminderService(customerRepo, userRepo, sender, logger.NewLogger())

	result, err := service.Run(cmd.Context(), month)
	if err != nil {
		return fmt.Errorf("reminder run failed: %w", err)
	}

	logger.Info("reminder run finished",
		"month", result.Month,
		"customers", result.Customers,
		"recipients", result.Recipients)

	return nil
}
