package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a conexão a partir das variáveis de ambiente
// (DB_HOST, DB_PORT, DB_NAME, DB_SECRET_ID).
func GetDB() (*gorm.DB, error) {
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "provisionamento"
	}

	return ConnectDataBase(uint(port), os.Getenv("DB_HOST"), dbname, os.Getenv("DB_SECRET_ID"))
}
