package main

import (
	"os"

	"github.com/Adam-Aviv/calorie-tracker-api/config"
	"github.com/Adam-Aviv/calorie-tracker-api/routes"
	"github.com/Adam-Aviv/calorie-tracker-api/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(config.DB)
	r.Run(":" + port)
}
