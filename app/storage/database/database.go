package database

import (
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres migration driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres sql driver
	"github.com/pkg/errors"

	"github.com/LevanSamadashvili/BitcoinWallet/app/storage/database/migrations"
)

// Postgres satisfies all four storage ports over a single database.
type Postgres struct {
	DB *sqlx.DB
}

func Connect(cfg Config) (*Postgres, error) {
	db, err := sqlx.Connect("postgres", cfg.DBConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to the database")
	}

	// auto-migrate the db
	if err = migrateDB(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to migrate the database")
	}

	return &Postgres{DB: db}, nil
}

func (p *Postgres) Close() error {
	return p.DB.Close()
}

func migrateDB(cfg Config) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errors.WithMessage(err, "failed to initialize a migration source")
	}

	migration, err := migrate.NewWithSourceInstance("iofs", source, cfg.DBConnectionStringForMigration())
	if err != nil {
		return errors.WithMessage(err, "failed to initialize a migration instance")
	}

	err = migration.Up()
	if errors.Is(err, migrate.ErrNoChange) { // "no change" is not an error
		err = nil
	}
	return errors.WithMessage(err, "failed to execute migrations")
}
