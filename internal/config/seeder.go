package config

import (
	"fmt"

	"prenderia/internal/adapters/persistence/models"
	"prenderia/internal/pkg/password"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db   *gorm.DB
	seed SeedConfig
	log  *zap.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, seed SeedConfig, log *zap.Logger) *Seeder {
	return &Seeder{db: db, seed: seed, log: log}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	s.log.Info("running database seeders")

	if err := s.seedAdminUser(); err != nil {
		s.log.Warn("admin seeder skipped", zap.Error(err))
	}
	if err := s.seedTiposArticulos(); err != nil {
		s.log.Warn("tipos seeder skipped", zap.Error(err))
	}

	s.log.Info("database seeding completed")
	return nil
}

// seedAdminUser creates the bootstrap ADMIN when no admin exists
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.Usuario{}).Where("rol = ?", "ADMIN").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash(s.seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.Usuario{
		Nombres:        s.seed.AdminNombres,
		Identificacion: s.seed.AdminIdentificacion,
		Password:       hashedPassword,
		Rol:            "ADMIN",
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	s.log.Info("admin user created", zap.String("identificacion", admin.Identificacion))
	return nil
}

// defaultTipos are the article categories a fresh install starts with
var defaultTipos = []string{"Joyería", "Electrónica", "Electrodomésticos", "Herramientas", "Vehículos"}

// seedTiposArticulos fills an empty tipos_articulos catalog
func (s *Seeder) seedTiposArticulos() error {
	var count int64
	if err := s.db.Model(&models.TipoArticulo{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tipos := make([]models.TipoArticulo, len(defaultTipos))
	for i, nombre := range defaultTipos {
		tipos[i] = models.TipoArticulo{Nombre: nombre}
	}
	return s.db.Create(&tipos).Error
}
