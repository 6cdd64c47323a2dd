package main

import (
	_ "grenzgaenger_service/docs"
	"grenzgaenger_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Grenzgänger-Service API
// @version         1.0
// @description     Lead intake with scoring and net salary estimates for Austrian cross-border commuters working in Switzerland.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
