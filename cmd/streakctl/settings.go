package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/comitanigiacomo/streak-radar/internal/config"
	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
)

func (c *cli) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := c.app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			return c.printSettings(settings)
		},
	}
	cmd.AddCommand(c.newSettingsSetCmd())
	return cmd
}

func (c *cli) newSettingsSetCmd() *cobra.Command {
	var notifications, weekly bool
	var theme string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.SettingsPatch
			if cmd.Flags().Changed("notifications") {
				patch.Notifications = &notifications
			}
			if cmd.Flags().Changed("weekly-reports") {
				patch.WeeklyReports = &weekly
			}
			if cmd.Flags().Changed("theme") {
				t := domain.Theme(theme)
				patch.Theme = &t
			}

			settings, err := c.app.Settings.Update(cmd.Context(), patch)
			if err != nil {
				return err
			}
			return c.printSettings(settings)
		},
	}

	cmd.Flags().BoolVar(&notifications, "notifications", true, "Enable routine reminders")
	cmd.Flags().BoolVar(&weekly, "weekly-reports", true, "Enable weekly reports")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme: light or dark")
	return cmd
}

func (c *cli) printSettings(s domain.Settings) error {
	if c.asJSON {
		return c.printJSON(s)
	}
	c.println("notifications:  %s", check(s.Notifications))
	c.println("weekly reports: %s", check(s.WeeklyReports))
	c.println("theme:          %s", s.Theme)
	return nil
}

// newDSNCmd manages the Postgres DSN kept in the OS keyring so it never
// has to live in a dotenv file.
func (c *cli) newDSNCmd() *cobra.Command {
	annotations := map[string]string{skipStore: "true"}

	cmd := &cobra.Command{
		Use:         "dsn",
		Short:       "Manage the Postgres DSN stored in the OS keyring",
		Annotations: annotations,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:         "set DSN",
			Short:       "Store the DSN",
			Args:        cobra.ExactArgs(1),
			Annotations: annotations,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := keyring.Set(config.AppName, config.KeyringUser, args[0]); err != nil {
					return err
				}
				c.println("Postgres DSN saved to the keyring.")
				return nil
			},
		},
		&cobra.Command{
			Use:         "clear",
			Short:       "Remove the stored DSN",
			Annotations: annotations,
			RunE: func(cmd *cobra.Command, args []string) error {
				err := keyring.Delete(config.AppName, config.KeyringUser)
				if err != nil && !errors.Is(err, keyring.ErrNotFound) {
					return err
				}
				c.println("Postgres DSN removed.")
				return nil
			},
		},
	)
	return cmd
}
