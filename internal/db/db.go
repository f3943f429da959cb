package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sharpfade/barber-booking/internal/config"
	"github.com/sharpfade/barber-booking/internal/models"
)

func NewDB(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.BarberProfile{},
		&models.Client{},
		&models.Service{},
		&models.Availability{},
		&models.Booking{},
		&models.GalleryImage{},
		&models.AuditLog{},
	); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	// A checagem de conflito na aplicação é apenas um pre-flight; quem
	// decide de verdade, sob submissão concorrente, é esta constraint de
	// exclusão. Dois intervalos ocupantes do mesmo barbeiro no mesmo dia
	// nunca se sobrepõem ([start, end) via int4range).
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$ BEGIN
            ALTER TABLE bookings
                ADD CONSTRAINT bookings_no_overlap
                EXCLUDE USING gist (
                    barber_id WITH =,
                    date WITH =,
                    int4range(start_minute, end_minute) WITH &&
                )
                WHERE (status IN ('pending', 'confirmed'));
        EXCEPTION
            WHEN duplicate_table THEN NULL;
            WHEN duplicate_object THEN NULL;
        END $$
    `)

	return db
}
