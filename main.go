package main

import (
	"github.com/EslamElkfafy/medical-app-update/authentication"
	"github.com/EslamElkfafy/medical-app-update/availability"
	"github.com/EslamElkfafy/medical-app-update/configuration"
	"github.com/EslamElkfafy/medical-app-update/controllers"
	"github.com/EslamElkfafy/medical-app-update/routes"
)

func main() {
	//Perform application initialization
	cfg := configuration.LoadConfig()
	configuration.ConfigDB(cfg)
	configuration.InitRedis(cfg)
	authentication.Init(cfg.JWTSecret)

	store := availability.NewGormStore(configuration.DB)
	controllers.Init(cfg, availability.NewService(store))

	r := routes.SetupRoutes()

	//Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
