package main

import (
	_ "rab_service/docs"
	"rab_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           RAB Service API
// @version         1.0
// @description     Budget estimates (RAB), price catalog, project ledger and client payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
