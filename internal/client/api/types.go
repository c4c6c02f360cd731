package api

import "time"

// Loan and installment estados.
const (
	EstadoActivo    = "ACTIVO"
	EstadoInactivo  = "INACTIVO"
	EstadoPagado    = "PAGADO"
	EstadoPendiente = "PENDIENTE"
)

// Usuario is a customer or admin account.
type Usuario struct {
	ID             uint   `json:"id_usuario"`
	Nombres        string `json:"nombres"`
	Identificacion string `json:"identificacion"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Rol            string `json:"rol"`
}

// UsuarioInput creates a usuario.
type UsuarioInput struct {
	Nombres        string `json:"nombres"`
	Identificacion string `json:"identificacion"`
	Direccion      string `json:"direccion,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Password       string `json:"password"`
	Rol            string `json:"rol,omitempty"`
}

// UsuarioUpdate changes the non-nil fields of a usuario.
type UsuarioUpdate struct {
	Nombres        *string `json:"nombres,omitempty"`
	Identificacion *string `json:"identificacion,omitempty"`
	Direccion      *string `json:"direccion,omitempty"`
	Telefono       *string `json:"telefono,omitempty"`
	Password       *string `json:"password,omitempty"`
	Rol            *string `json:"rol,omitempty"`
}

// MeUpdate changes the contact data of the calling usuario.
type MeUpdate struct {
	Direccion *string `json:"direccion,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
}

// TipoArticulo is an item category.
type TipoArticulo struct {
	ID     uint   `json:"id_tipo_articulo"`
	Nombre string `json:"nombre"`
}

// Articulo is a pawned item.
type Articulo struct {
	ID             uint          `json:"id_articulo"`
	EmpenoID       uint          `json:"empeno_id"`
	TipoArticuloID uint          `json:"tipo_articulo_id"`
	Descripcion    string        `json:"descripcion"`
	ValorAvaluo    float64       `json:"valor_avaluo"`
	Estado         string        `json:"estado"`
	TipoArticulo   *TipoArticulo `json:"tipo_articulo,omitempty"`
}

// ArticuloInput is an item inside an empeño body. ID is zero for new items.
type ArticuloInput struct {
	ID             uint    `json:"id_articulo,omitempty"`
	Descripcion    string  `json:"descripcion"`
	TipoArticuloID uint    `json:"tipo_articulo_id"`
	Valor          float64 `json:"valor"`
}

// NewArticulo adds an item to an existing empeño.
type NewArticulo struct {
	EmpenoID       uint    `json:"empeno_id"`
	TipoArticuloID uint    `json:"tipo_articulo_id"`
	Descripcion    string  `json:"descripcion"`
	ValorAvaluo    float64 `json:"valor_avaluo"`
}

// Empeno groups the items left as collateral.
type Empeno struct {
	ID                uint       `json:"id_empeno"`
	UsuarioID         uint       `json:"usuario_id"`
	Descripcion       string     `json:"descripcion"`
	InteresPorcentaje float64    `json:"interes_porcentaje"`
	Meses             int        `json:"meses"`
	FechaEmpeno       time.Time  `json:"fecha_empeno"`
	Usuario           *Usuario   `json:"usuario,omitempty"`
	Articulos         []Articulo `json:"articulos,omitempty"`
}

// EmpenoInput creates or updates an empeño.
type EmpenoInput struct {
	UsuarioID         uint            `json:"usuarioId"`
	Descripcion       string          `json:"descripcion"`
	InteresPorcentaje float64         `json:"interes_porcentaje"`
	Meses             int             `json:"meses"`
	Articulos         []ArticuloInput `json:"articulos"`
}

// Prestamo is a loan granted against an empeño.
type Prestamo struct {
	ID            uint      `json:"id_prestamo"`
	EmpenoID      uint      `json:"empeno_id"`
	Valor         float64   `json:"valor"`
	Estado        string    `json:"estado"`
	FechaPrestamo time.Time `json:"fecha_prestamo"`
	Empeno        *Empeno   `json:"empeno,omitempty"`
	Intereses     []Interes `json:"intereses,omitempty"`
}

// Cliente returns the name of the loan's owner when the empeño was embedded.
func (p *Prestamo) Cliente() string {
	if p.Empeno != nil && p.Empeno.Usuario != nil {
		return p.Empeno.Usuario.Nombres
	}
	return ""
}

// PrestamoInput creates a loan. FechaPrestamo is YYYY-MM-DD; empty means today.
type PrestamoInput struct {
	EmpenoID      uint    `json:"empeno_id"`
	Valor         float64 `json:"valor"`
	Estado        string  `json:"estado,omitempty"`
	FechaPrestamo string  `json:"fecha_prestamo,omitempty"`
}

// Interes is one monthly installment of a loan.
type Interes struct {
	ID           uint      `json:"id_interes"`
	PrestamoID   uint      `json:"prestamo_id"`
	Mes          int       `json:"mes"`
	FechaInteres time.Time `json:"fecha_interes"`
	Valor        float64   `json:"valor"`
	Estado       string    `json:"estado"`
}

type estadoRequest struct {
	Estado string `json:"estado"`
}

type tipoRequest struct {
	Nombre string `json:"nombre"`
}
