package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDataBase abre a conexão Postgres via GORM. As credenciais vêm do
// ambiente ou do Secrets Manager, nessa ordem.
func ConnectDataBase(port uint, host, dbname, secretID string) (*gorm.DB, error) {
	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	username, password, err := retrieveCredentials(secretID)
	if err != nil {
		return nil, fmt.Errorf("credenciais do banco: %w", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		host, username, password, dbname, port, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
