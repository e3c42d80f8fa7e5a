package main

import (
	_ "carwash/docs"
	"carwash/internal/cmd"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Car Wash API
// @version         1.0
// @description     Customers, vehicles, employees and car wash orders with contact and activity reports.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	cmd.Execute()
}
