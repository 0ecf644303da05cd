package main

import (
	_ "agendamento_cras/docs"
	"agendamento_cras/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Agendamento CRAS API
// @version         1.0
// @description     Stage-gated scheduling form for the Cadastro Único service (CRAS, Rio de Janeiro).
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
