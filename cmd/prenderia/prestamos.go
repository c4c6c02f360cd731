package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"prenderia/internal/client/api"
	"prenderia/internal/client/settlement"

	"github.com/spf13/cobra"
)

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("ID inválido: %q", s)
	}
	return uint(n), nil
}

func prestamosCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prestamos",
		Aliases: []string{"prestamo"},
		Short:   "Gestionar préstamos",
	}
	cmd.AddCommand(
		prestamosListCommand(a),
		prestamosShowCommand(a),
		prestamosCreateCommand(a),
		prestamosEstadoCommand(a),
	)
	return cmd
}

func prestamosListCommand(a *app) *cobra.Command {
	var estado string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar préstamos (todos para ADMIN, los propios para CLIENTE)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}

			var (
				prestamos []api.Prestamo
				err       error
			)
			if estado != "" {
				prestamos, err = a.client.ListPrestamosByEstado(cmd.Context(), strings.ToUpper(estado))
			} else {
				prestamos, err = a.client.ListPrestamos(cmd.Context(), a.role())
			}
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tCLIENTE\tVALOR\tESTADO\tFECHA")
			for _, p := range prestamos {
				fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\n", p.ID, p.Cliente(), p.Valor, p.Estado, p.FechaPrestamo.Format(dateLayout))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&estado, "estado", "", "filtrar por estado (ACTIVO, INACTIVO, PAGADO; solo ADMIN)")
	return cmd
}

func prestamosShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Ver un préstamo y sus cuotas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.client.GetPrestamo(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := newTable(out)
			fmt.Fprintf(tw, "Préstamo:\t%d\n", p.ID)
			fmt.Fprintf(tw, "Cliente:\t%s\n", p.Cliente())
			fmt.Fprintf(tw, "Empeño:\t%d\n", p.EmpenoID)
			fmt.Fprintf(tw, "Valor:\t%.2f\n", p.Valor)
			fmt.Fprintf(tw, "Estado:\t%s\n", p.Estado)
			fmt.Fprintf(tw, "Fecha:\t%s\n", p.FechaPrestamo.Format(dateLayout))
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return printIntereses(out, p.Intereses)
		},
	}
}

func prestamosCreateCommand(a *app) *cobra.Command {
	var in api.PrestamoInput

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crear un préstamo sobre un empeño",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			in.Estado = strings.ToUpper(in.Estado)

			p, err := a.client.CreatePrestamo(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Préstamo %d creado (%s) con %d cuotas\n", p.ID, p.Estado, len(p.Intereses))
			return nil
		},
	}

	cmd.Flags().UintVar(&in.EmpenoID, "empeno", 0, "ID del empeño")
	cmd.Flags().Float64Var(&in.Valor, "valor", 0, "valor del préstamo")
	cmd.Flags().StringVar(&in.Estado, "estado", api.EstadoActivo, "estado inicial (ACTIVO o INACTIVO)")
	cmd.Flags().StringVar(&in.FechaPrestamo, "fecha", "", "fecha del préstamo YYYY-MM-DD (por defecto hoy)")
	_ = cmd.MarkFlagRequired("empeno")
	_ = cmd.MarkFlagRequired("valor")
	return cmd
}

func prestamosEstadoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "estado ID ESTADO",
		Short: "Cambiar el estado de un préstamo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.client.UpdatePrestamoEstado(cmd.Context(), id, strings.ToUpper(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Préstamo %d: %s\n", p.ID, p.Estado)
			return nil
		},
	}
}

func interesesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intereses",
		Short: "Consultar y pagar cuotas de interés",
	}
	cmd.AddCommand(interesesListCommand(a), interesesPagarCommand(a))
	return cmd
}

// loadWorkflow fetches the loan and its installments, settling it when every
// installment is already paid.
func (a *app) loadWorkflow(ctx context.Context, prestamoID uint) (*settlement.Workflow, error) {
	p, err := a.client.GetPrestamo(ctx, prestamoID)
	if err != nil {
		return nil, err
	}
	w := settlement.New(a.client, settlement.WithLogger(a.log.Named("settlement")))
	if err := w.Load(ctx, *p); err != nil {
		return nil, err
	}
	return w, nil
}

func interesesListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list PRESTAMO_ID",
		Short: "Listar las cuotas de un préstamo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			w, err := a.loadWorkflow(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printIntereses(out, w.Installments()); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nPréstamo %d: %s (%s), %d cuotas pendientes\n", id, w.Loan().Estado, w.State(), w.Pending())
			return nil
		},
	}
}

func interesesPagarCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pagar PRESTAMO_ID INTERES_ID",
		Short: "Marcar una cuota como pagada; salda el préstamo al pagar la última",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			prestamoID, err := parseID(args[0])
			if err != nil {
				return err
			}
			interesID, err := parseID(args[1])
			if err != nil {
				return err
			}

			w, err := a.loadWorkflow(cmd.Context(), prestamoID)
			if err != nil {
				return err
			}

			outcome, err := w.MarkInstallmentPaid(cmd.Context(), interesID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outcome.InstallmentPaid {
				fmt.Fprintf(out, "Cuota %d pagada\n", interesID)
			} else {
				fmt.Fprintf(out, "Cuota %d ya estaba pagada\n", interesID)
			}
			if outcome.LoanSettled {
				fmt.Fprintf(out, "Préstamo %d saldado: %s\n", prestamoID, api.EstadoPagado)
			} else {
				fmt.Fprintf(out, "Préstamo %d: %d cuotas pendientes\n", prestamoID, w.Pending())
			}
			return nil
		},
	}
}

func printIntereses(w io.Writer, intereses []api.Interes) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tMES\tFECHA\tVALOR\tESTADO")
	for _, in := range intereses {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.2f\t%s\n", in.ID, in.Mes, in.FechaInteres.Format(dateLayout), in.Valor, in.Estado)
	}
	return tw.Flush()
}
