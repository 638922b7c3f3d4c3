package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/config"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.UserType{},
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.AvailableSlot{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedUserTypes(db)

	return db
}

// The client/professional/admin rows are fixed ids: user creation falls
// back to UserTypeClientID when no type is supplied.
func seedUserTypes(db *gorm.DB) {
	seed := []models.UserType{
		{ID: models.UserTypeClientID, Name: models.RoleClient},
		{ID: models.UserTypeProfessionalID, Name: models.RoleProfessional},
		{ID: models.UserTypeAdminID, Name: models.RoleAdmin},
	}

	for _, ut := range seed {
		if err := db.FirstOrCreate(&models.UserType{}, ut).Error; err != nil {
			log.Printf("failed to seed user type %q: %v", ut.Name, err)
		}
	}
}
