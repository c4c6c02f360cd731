package main

import (
	"fmt"
	"strconv"
	"strings"

	"prenderia/internal/client/api"

	"github.com/spf13/cobra"
)

func empenosCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "empenos",
		Aliases: []string{"empeno"},
		Short:   "Gestionar empeños",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar empeños",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			empenos, err := a.client.ListEmpenos(cmd.Context())
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tCLIENTE\tINTERÉS %\tMESES\tARTÍCULOS\tFECHA")
			for _, e := range empenos {
				cliente := ""
				if e.Usuario != nil {
					cliente = e.Usuario.Nombres
				}
				fmt.Fprintf(tw, "%d\t%s\t%.2f\t%d\t%d\t%s\n", e.ID, cliente, e.InteresPorcentaje, e.Meses, len(e.Articulos), e.FechaEmpeno.Format(dateLayout))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(list, empenosCreateCommand(a))
	return cmd
}

// parseArticulo reads TIPO_ID:VALOR:DESCRIPCION.
func parseArticulo(s string) (api.ArticuloInput, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return api.ArticuloInput{}, fmt.Errorf("artículo inválido %q: use TIPO_ID:VALOR:DESCRIPCION", s)
	}
	tipo, err := parseID(parts[0])
	if err != nil {
		return api.ArticuloInput{}, err
	}
	valor, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return api.ArticuloInput{}, fmt.Errorf("valor inválido %q", parts[1])
	}
	return api.ArticuloInput{TipoArticuloID: tipo, Valor: valor, Descripcion: parts[2]}, nil
}

func empenosCreateCommand(a *app) *cobra.Command {
	var (
		in        api.EmpenoInput
		articulos []string
	)

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registrar un empeño con sus artículos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			for _, s := range articulos {
				art, err := parseArticulo(s)
				if err != nil {
					return err
				}
				in.Articulos = append(in.Articulos, art)
			}

			e, err := a.client.CreateEmpeno(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Empeño %d creado con %d artículos\n", e.ID, len(e.Articulos))
			return nil
		},
	}

	cmd.Flags().UintVar(&in.UsuarioID, "usuario", 0, "ID del cliente")
	cmd.Flags().StringVar(&in.Descripcion, "descripcion", "", "descripción")
	cmd.Flags().Float64Var(&in.InteresPorcentaje, "interes", 0, "porcentaje de interés mensual")
	cmd.Flags().IntVar(&in.Meses, "meses", 0, "plazo en meses")
	cmd.Flags().StringArrayVar(&articulos, "articulo", nil, "artículo TIPO_ID:VALOR:DESCRIPCION (repetible)")
	_ = cmd.MarkFlagRequired("usuario")
	return cmd
}

func articulosCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "articulos",
		Aliases: []string{"articulo"},
		Short:   "Gestionar artículos",
	}

	var estado string
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar artículos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			articulos, err := a.client.ListArticulos(cmd.Context(), strings.ToUpper(estado))
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tEMPEÑO\tTIPO\tDESCRIPCIÓN\tAVALÚO\tESTADO")
			for _, art := range articulos {
				tipo := ""
				if art.TipoArticulo != nil {
					tipo = art.TipoArticulo.Nombre
				}
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%.2f\t%s\n", art.ID, art.EmpenoID, tipo, art.Descripcion, art.ValorAvaluo, art.Estado)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&estado, "estado", "", "filtrar por estado (EMPENADO, DEVUELTO, VENDIDO)")

	var in api.NewArticulo
	create := &cobra.Command{
		Use:   "crear",
		Short: "Agregar un artículo a un empeño",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			art, err := a.client.CreateArticulo(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Artículo %d agregado al empeño %d\n", art.ID, art.EmpenoID)
			return nil
		},
	}
	create.Flags().UintVar(&in.EmpenoID, "empeno", 0, "ID del empeño")
	create.Flags().UintVar(&in.TipoArticuloID, "tipo", 0, "ID del tipo de artículo")
	create.Flags().StringVar(&in.Descripcion, "descripcion", "", "descripción")
	create.Flags().Float64Var(&in.ValorAvaluo, "valor", 0, "valor de avalúo")
	_ = create.MarkFlagRequired("empeno")
	_ = create.MarkFlagRequired("tipo")

	cmd.AddCommand(list, create)
	return cmd
}

func tiposCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tipos",
		Short: "Gestionar tipos de artículo",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar tipos de artículo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			tipos, err := a.client.ListTiposArticulos(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNOMBRE")
			for _, t := range tipos {
				fmt.Fprintf(tw, "%d\t%s\n", t.ID, t.Nombre)
			}
			return tw.Flush()
		},
	}

	create := &cobra.Command{
		Use:   "crear NOMBRE",
		Short: "Crear un tipo de artículo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			t, err := a.client.CreateTipoArticulo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tipo %d creado: %s\n", t.ID, t.Nombre)
			return nil
		},
	}

	cmd.AddCommand(list, create)
	return cmd
}

func usuariosCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "usuarios",
		Aliases: []string{"usuario"},
		Short:   "Gestionar usuarios",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar usuarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			usuarios, err := a.client.ListUsuarios(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNOMBRES\tIDENTIFICACIÓN\tTELÉFONO\tROL")
			for _, u := range usuarios {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Nombres, u.Identificacion, u.Telefono, u.Rol)
			}
			return tw.Flush()
		},
	}

	var in api.UsuarioInput
	create := &cobra.Command{
		Use:   "crear",
		Short: "Crear un usuario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			in.Rol = strings.ToUpper(in.Rol)
			u, err := a.client.CreateUsuario(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %d creado: %s (%s)\n", u.ID, u.Nombres, u.Rol)
			return nil
		},
	}
	create.Flags().StringVar(&in.Nombres, "nombres", "", "nombres completos")
	create.Flags().StringVar(&in.Identificacion, "identificacion", "", "identificación (solo números)")
	create.Flags().StringVar(&in.Password, "password", "", "contraseña")
	create.Flags().StringVar(&in.Rol, "rol", "CLIENTE", "ADMIN o CLIENTE")
	create.Flags().StringVar(&in.Direccion, "direccion", "", "dirección")
	create.Flags().StringVar(&in.Telefono, "telefono", "", "teléfono")
	_ = create.MarkFlagRequired("nombres")
	_ = create.MarkFlagRequired("identificacion")
	_ = create.MarkFlagRequired("password")

	del := &cobra.Command{
		Use:   "eliminar ID",
		Short: "Eliminar un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteUsuario(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %d eliminado\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, create, del)
	return cmd
}

func meCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Ver los datos de la cuenta propia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			u, err := a.client.GetMe(cmd.Context())
			if err != nil {
				return err
			}
			printUsuario(cmd, u)
			return nil
		},
	}

	var direccion, telefono string
	update := &cobra.Command{
		Use:   "actualizar",
		Short: "Actualizar dirección y teléfono",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			var in api.MeUpdate
			if cmd.Flags().Changed("direccion") {
				in.Direccion = &direccion
			}
			if cmd.Flags().Changed("telefono") {
				in.Telefono = &telefono
			}
			u, err := a.client.UpdateMe(cmd.Context(), in)
			if err != nil {
				return err
			}
			printUsuario(cmd, u)
			return nil
		},
	}
	update.Flags().StringVar(&direccion, "direccion", "", "nueva dirección")
	update.Flags().StringVar(&telefono, "telefono", "", "nuevo teléfono")

	cmd.AddCommand(update)
	return cmd
}

func printUsuario(cmd *cobra.Command, u *api.Usuario) {
	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintf(tw, "Nombres:\t%s\n", u.Nombres)
	fmt.Fprintf(tw, "Identificación:\t%s\n", u.Identificacion)
	fmt.Fprintf(tw, "Dirección:\t%s\n", u.Direccion)
	fmt.Fprintf(tw, "Teléfono:\t%s\n", u.Telefono)
	fmt.Fprintf(tw, "Rol:\t%s\n", u.Rol)
	_ = tw.Flush()
}
