package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"salescrm/internal/domain/account"
	"salescrm/internal/domain/auth"
	"salescrm/internal/domain/contact"
	"salescrm/internal/domain/deal"
	"salescrm/internal/domain/lead"
	"salescrm/internal/domain/pipeline"
	"salescrm/internal/domain/visit"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to the pure-Go
// SQLite driver for local development and tests.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every tracked entity.
// Referenced tables migrate before the tables pointing at them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&pipeline.Stage{},
		&account.Account{},
		&contact.Contact{},
		&lead.Lead{},
		&deal.Deal{},
		&visit.VisitReport{},
	)
}
