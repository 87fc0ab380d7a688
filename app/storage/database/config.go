package database

import (
	"fmt"
)

type Config struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	Name            string `mapstructure:"name"`
	MigrationsTable string `mapstructure:"migrationsTable"`
}

func (c *Config) DBConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		c.Host, c.Port, c.Name, c.User, c.Password,
	)
}

func (c *Config) DBConnectionStringForMigration() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=disable&x-migrations-table=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		c.MigrationsTable,
	)
}
