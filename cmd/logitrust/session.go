package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "login <role>",
		Short:     "Act as the demo user for a role",
		Long:      "Switches the active demo identity. Roles: driver, dispatch, ops.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(entities.RoleDriver), string(entities.RoleDispatch), string(entities.RoleOps)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				user, err := d.Session.Login(ctx, args[0])
				if err != nil {
					return err
				}
				return printUser(cmd, &user)
			})
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the active demo user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if err := d.Session.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
				return nil
			})
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active demo user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				user, err := d.Session.Current(ctx)
				if err != nil {
					return err
				}
				if user == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
					return nil
				}
				return printUser(cmd, user)
			})
		},
	}
}

func printUser(cmd *cobra.Command, user *entities.User) error {
	if globalJSON {
		return writeJSON(cmd.OutOrStdout(), user)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", user.Name, user.ID, user.Role)
	return nil
}
