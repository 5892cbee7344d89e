package main

import (
	_ "taller_pos/docs"
	"taller_pos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Taller POS API
// @version         1.0
// @description     Work-order service for automotive service centers (orders, diagnostics, XML reconciliation) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Operator id resolved against the users table.

func main() {
	routes.Run()
}
