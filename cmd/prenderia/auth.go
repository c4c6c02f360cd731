package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func loginCommand(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Contraseña: ")
				scanner := bufio.NewScanner(cmd.InOrStdin())
				scanner.Scan()
				password = strings.TrimSpace(scanner.Text())
			}

			res := a.session.Login(cmd.Context(), username, password)
			if !res.OK {
				return errors.New(res.Error)
			}

			name, role := "-", "-"
			if id := a.session.Identity(); id != nil {
				if id.DisplayName != nil {
					name = *id.DisplayName
				}
				if id.Role != nil {
					role = string(*id.Role)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sesión iniciada: %s (%s)\n", name, role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "identificación")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (se solicita si se omite)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func logoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}
}

func whoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la identidad de la sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}

			id := a.session.Identity()
			name, role := "-", "-"
			if id.DisplayName != nil {
				name = *id.DisplayName
			}
			if id.Role != nil {
				role = string(*id.Role)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "Usuario:\t%s\n", name)
			fmt.Fprintf(tw, "Rol:\t%s\n", role)
			fmt.Fprintf(tw, "Identificación:\t%s\n", id.ExternalID)
			fmt.Fprintf(tw, "ID:\t%d\n", id.SubjectID)
			return tw.Flush()
		},
	}
}
