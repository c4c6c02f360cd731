package main

import (
	"fmt"
	"io"
	"os"

	"prenderia/internal/client/api"

	"github.com/spf13/cobra"
)

func reportesCommand(a *app) *cobra.Command {
	var (
		filter  api.ReportFilter
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "reportes",
		Short: "Resumen, intereses mensuales, empeños por tipo e historial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}

			r, err := a.client.FetchReport(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if csvPath != "" {
				return writeCSV(cmd.OutOrStdout(), csvPath, r.Historial)
			}
			return printReport(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().UintVar(&filter.UsuarioID, "usuario", 0, "filtrar historial por cliente")
	cmd.Flags().IntVar(&filter.Mes, "mes", 0, "filtrar historial por mes (1-12)")
	cmd.Flags().IntVar(&filter.Anio, "anio", 0, "año de los reportes")
	cmd.Flags().StringVar(&csvPath, "csv", "", "exportar el historial a un archivo CSV ('-' para stdout)")
	return cmd
}

func writeCSV(stdout io.Writer, path string, rows []api.HistorialEmpeno) error {
	if path == "-" {
		return api.WriteHistorialCSV(stdout, rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := api.WriteHistorialCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Historial exportado a %s (%d filas)\n", path, len(rows))
	return nil
}

func printReport(w io.Writer, r *api.Report) error {
	s := r.Resumen
	tw := newTable(w)
	fmt.Fprintf(tw, "Préstamos activos:\t%d\n", s.TotalPrestamosActivos)
	fmt.Fprintf(tw, "Valor total activo:\t%.2f\n", s.ValorTotalActivo)
	fmt.Fprintf(tw, "Préstamos pagados:\t%d\n", s.TotalPrestamosPagados)
	fmt.Fprintf(tw, "Usuarios:\t%d\n", s.TotalUsuarios)
	fmt.Fprintf(tw, "Cuotas pendientes:\t%d\n", s.InteresesPendientes)
	fmt.Fprintf(tw, "Intereses cobrados:\t%.2f\n", s.ValorInteresesCobrados)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nIntereses mensuales")
	tw = newTable(w)
	fmt.Fprintln(tw, "MES\tVALOR")
	for _, m := range r.InteresesMensuales {
		fmt.Fprintf(tw, "%s\t%.2f\n", m.Mes, m.Valor)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nEmpeños por tipo")
	tw = newTable(w)
	fmt.Fprintln(tw, "TIPO\tARTÍCULOS")
	for _, t := range r.EmpenosPorTipo {
		fmt.Fprintf(tw, "%s\t%d\n", t.Name, t.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nHistorial de empeños")
	tw = newTable(w)
	fmt.Fprintln(tw, "EMPEÑO\tFECHA\tCLIENTE\tIDENTIFICACIÓN\tPRÉSTAMO\tESTADO\tARTÍCULOS")
	for _, h := range r.Historial {
		valor, estado := "-", "-"
		if h.ValorPrestamo != nil {
			valor = fmt.Sprintf("%.2f", *h.ValorPrestamo)
		}
		if h.EstadoPrestamo != nil {
			estado = *h.EstadoPrestamo
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", h.IDEmpeno, h.FechaEmpeno.Format(dateLayout), h.NombreCliente, h.IdentificacionCliente, valor, estado, h.ArticulosResumen)
	}
	return tw.Flush()
}
