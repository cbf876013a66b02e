package postgres

import (
	"fmt"

	"fastfeet/internal/adapters/out/postgres/deliveryrepo"
	"fastfeet/internal/adapters/out/postgres/notificationrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/adapters/out/postgres/userrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects with TranslateError enabled, which the repositories rely on to
// report unique-key violations as conflicts.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// DeliveryRecipientConstraint keeps a recipient from being deleted while a delivery
// still points at it.
const DeliveryRecipientConstraint = "fk_deliveries_recipient"

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&recipientrepo.RecipientDTO{},
		&deliveryrepo.DeliveryDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	if !db.Migrator().HasConstraint(&deliveryrepo.DeliveryDTO{}, DeliveryRecipientConstraint) {
		err = db.Exec(`
			ALTER TABLE deliveries
			ADD CONSTRAINT ` + DeliveryRecipientConstraint + `
			FOREIGN KEY (recipient_id) REFERENCES recipients (id) ON DELETE RESTRICT
		`).Error
		if err != nil {
			return fmt.Errorf("add %s: %w", DeliveryRecipientConstraint, err)
		}
	}
	return nil
}

// MakeConnectionString builds a key/value DSN for the pgx driver.
func MakeConnectionString(host string, port string, user string, password string, dbName string, sslMode string) string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		host, port, user, password, dbName, sslMode)
}
