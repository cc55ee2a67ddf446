package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/valentinobarber/site-api/internal/config"
	"github.com/valentinobarber/site-api/internal/models"
)

// New opens the connection pool and runs migrations. The handle is returned
// to the caller for injection; nothing here keeps package-level state or
// terminates the process on failure.
func New(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Settings{},
		&models.GalleryItem{},
		&models.Testimonial{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Schema-level slot uniqueness. The reservation transaction already
	// prevents double booking with a row lock; this index backstops it.
	// Cancelled rows are excluded so a freed slot can be rebooked.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_barber_slot
        ON appointments (barber_id, start_time)
        WHERE status <> 'Cancelled'
    `).Error; err != nil {
		return nil, fmt.Errorf("create slot index: %w", err)
	}

	if err := db.Exec(`
        INSERT INTO settings ("key", brand_name)
        VALUES ('global', 'Valentino')
        ON CONFLICT ("key") DO NOTHING
    `).Error; err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}

	return db, nil
}
