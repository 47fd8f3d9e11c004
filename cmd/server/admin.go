package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"storefront/internal/service"
	"storefront/internal/session"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var (
	newAdminUsername string
	newAdminPassword string
	newAdminEmail    string

	passwordAdminID int64
	passwordValue   string
)

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		store, err := openStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		admins := service.NewAdminService(store.Admins, session.NewMemoryStore(time.Minute))
		id, err := admins.Create(cmd.Context(), service.AdminInput{
			Username: newAdminUsername,
			Password: newAdminPassword,
			Email:    newAdminEmail,
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		logger.Infof("created admin %q with id %d", newAdminUsername, id)
		return nil
	},
}

var adminSetPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Replace an admin's password",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		store, err := openStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		admins := service.NewAdminService(store.Admins, session.NewMemoryStore(time.Minute))
		if err := admins.SetPassword(cmd.Context(), passwordAdminID, passwordValue); err != nil {
			return fmt.Errorf("set password: %w", err)
		}
		logger.Infof("password updated for admin %d", passwordAdminID)
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin accounts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		store, err := openStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		admins, err := store.Admins.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list admins: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tCREATED")
		for _, a := range admins {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Username, a.Email, a.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&newAdminUsername, "username", "", "admin username")
	adminCreateCmd.Flags().StringVar(&newAdminPassword, "password", "", "admin password, stored as given")
	adminCreateCmd.Flags().StringVar(&newAdminEmail, "email", "", "admin email")
	_ = adminCreateCmd.MarkFlagRequired("username")
	_ = adminCreateCmd.MarkFlagRequired("password")
	_ = adminCreateCmd.MarkFlagRequired("email")

	adminSetPasswordCmd.Flags().Int64Var(&passwordAdminID, "id", 0, "admin id")
	adminSetPasswordCmd.Flags().StringVar(&passwordValue, "password", "", "new password, stored as given")
	_ = adminSetPasswordCmd.MarkFlagRequired("id")
	_ = adminSetPasswordCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd, adminSetPasswordCmd, adminListCmd)
}
