package configuration

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/EslamElkfafy/medical-app-update/models"
)

// hold connection to db
var DB *gorm.DB

// Config gathers every externally supplied setting in one place instead of
// scattering os.Getenv calls through the handlers.
type Config struct {
	DatabaseDSN           string
	RedisAddr             string
	JWTSecret             string
	HMSAccessKey          string
	HMSSecret             string
	HMSTemplateID         string
	ChatBotEndpoint       string
	ImageAnalysisEndpoint string
	SenderEmail           string
	SenderPassword        string
	AppBaseURL            string
	DefaultDisplayZone    string
}

// LoadConfig reads the environment (via .env when present) into a Config.
func LoadConfig() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := Config{
		DatabaseDSN:           os.Getenv("DB"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		HMSAccessKey:          os.Getenv("HMS_API_KEY"),
		HMSSecret:             os.Getenv("HMS_SECRET"),
		HMSTemplateID:         os.Getenv("HMS_TEMPLATE_ID"),
		ChatBotEndpoint:       os.Getenv("CHATBOT_ENDPOINT"),
		ImageAnalysisEndpoint: os.Getenv("IMAGE_ANALYSIS_ENDPOINT"),
		SenderEmail:           os.Getenv("Email"),
		SenderPassword:        os.Getenv("Password"),
		AppBaseURL:            os.Getenv("APP_BASE_URL"),
		DefaultDisplayZone:    os.Getenv("DISPLAY_ZONE"),
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.DefaultDisplayZone == "" {
		cfg.DefaultDisplayZone = "Africa/Cairo"
	}
	return cfg
}

// initializing db connection
func ConfigDB(cfg Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to the database")
	}

	DB.AutoMigrate(
		&models.DoctorProfile{},
		&models.Availability{},
		&models.Appointment{},
	)
}
