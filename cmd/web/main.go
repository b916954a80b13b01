// @title           Job Board API
// @version         1.0
// @description     Вакансии, отклики и генерация документов для соискателей.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "jobtracker_backend/internal/app"

func main() {
	app.Run()
}
