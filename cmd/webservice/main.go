package main

import (
	"log"

	"github.com/Delvoid/ecom-admin/config"
	"github.com/Delvoid/ecom-admin/internal/app"

	postgresDriver "github.com/Delvoid/ecom-admin/internal/infrastructure/database/postgres"
)

func main() {
	config := config.CreateNewConfig()
	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
