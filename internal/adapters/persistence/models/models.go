package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Usuarios
// ============================================================

// Usuario represents usuarios table
type Usuario struct {
	ID             uint           `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Nombres        string         `gorm:"size:150;not null" json:"nombres"`
	Identificacion string         `gorm:"size:20;uniqueIndex;not null" json:"identificacion"`
	Direccion      string         `gorm:"size:200" json:"direccion"`
	Telefono       string         `gorm:"size:30" json:"telefono"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	Rol            string         `gorm:"size:20;not null;default:'CLIENTE'" json:"rol"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// ============================================================
// Empeños y artículos
// ============================================================

// TipoArticulo catálogo de tipos de artículo
type TipoArticulo struct {
	ID        uint      `gorm:"column:id_tipo_articulo;primaryKey" json:"id_tipo_articulo"`
	Nombre    string    `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TipoArticulo) TableName() string {
	return "tipos_articulos"
}

// Empeno agrupa los artículos dejados en garantía por un usuario
type Empeno struct {
	ID                uint      `gorm:"column:id_empeno;primaryKey" json:"id_empeno"`
	UsuarioID         uint      `gorm:"not null;index" json:"usuario_id"`
	Descripcion       string    `gorm:"type:text" json:"descripcion"`
	InteresPorcentaje float64   `gorm:"type:decimal(5,2);not null" json:"interes_porcentaje"`
	Meses             int       `gorm:"not null" json:"meses"`
	FechaEmpeno       time.Time `gorm:"not null" json:"fecha_empeno"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Usuario   *Usuario   `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Articulos []Articulo `gorm:"foreignKey:EmpenoID" json:"articulos,omitempty"`
}

func (Empeno) TableName() string {
	return "empenos"
}

// Articulo un bien empeñado con su valor de avalúo
type Articulo struct {
	ID             uint      `gorm:"column:id_articulo;primaryKey" json:"id_articulo"`
	EmpenoID       uint      `gorm:"not null;index" json:"empeno_id"`
	TipoArticuloID uint      `gorm:"not null" json:"tipo_articulo_id"`
	Descripcion    string    `gorm:"size:255;not null" json:"descripcion"`
	ValorAvaluo    float64   `gorm:"type:decimal(15,2);not null" json:"valor_avaluo"`
	Estado         string    `gorm:"size:20;not null;default:'EMPENADO'" json:"estado"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Empeno       *Empeno       `gorm:"foreignKey:EmpenoID" json:"empeno,omitempty"`
	TipoArticulo *TipoArticulo `gorm:"foreignKey:TipoArticuloID" json:"tipo_articulo,omitempty"`
}

func (Articulo) TableName() string {
	return "articulos"
}

// ============================================================
// Préstamos e intereses
// ============================================================

// Prestamo dinero entregado contra un empeño
type Prestamo struct {
	ID            uint      `gorm:"column:id_prestamo;primaryKey" json:"id_prestamo"`
	EmpenoID      uint      `gorm:"not null;index" json:"empeno_id"`
	Valor         float64   `gorm:"type:decimal(15,2);not null" json:"valor"`
	Estado        string    `gorm:"size:20;not null;default:'ACTIVO';index" json:"estado"`
	FechaPrestamo time.Time `gorm:"not null" json:"fecha_prestamo"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Empeno    *Empeno   `gorm:"foreignKey:EmpenoID" json:"empeno,omitempty"`
	Intereses []Interes `gorm:"foreignKey:PrestamoID" json:"intereses,omitempty"`
}

func (Prestamo) TableName() string {
	return "prestamos"
}

// Interes cuota mensual de interés de un préstamo
type Interes struct {
	ID           uint      `gorm:"column:id_interes;primaryKey" json:"id_interes"`
	PrestamoID   uint      `gorm:"not null;index" json:"prestamo_id"`
	Mes          int       `gorm:"not null" json:"mes"`
	FechaInteres time.Time `gorm:"not null" json:"fecha_interes"`
	Valor        float64   `gorm:"type:decimal(15,2);not null" json:"valor"`
	Estado       string    `gorm:"size:20;not null;default:'PENDIENTE';index" json:"estado"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Interes) TableName() string {
	return "intereses"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Usuario{},
		&TipoArticulo{},
		&Empeno{},
		&Articulo{},
		&Prestamo{},
		&Interes{},
	)
}
