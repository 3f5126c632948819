package controllers

import (
	"github.com/go-playground/validator"

	"github.com/EslamElkfafy/medical-app-update/availability"
	"github.com/EslamElkfafy/medical-app-update/configuration"
)

var (
	cfg                 configuration.Config
	availabilityService *availability.Service
	validate            = validator.New()
)

// Init wires the loaded configuration and the availability service into the
// handler package.
func Init(c configuration.Config, svc *availability.Service) {
	cfg = c
	availabilityService = svc
}
