package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

func GetDB() (*gorm.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // Default PostgreSQL port
	}

	dbName := os.Getenv("DB_NAME")
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	return ConnectDataBase(uint(port), dbHost, dbName, username, password)
}
