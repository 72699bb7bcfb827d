package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	Environment    string
	MongoURI       string
	MongoDatabase  string
	JWTSecret      string
	AdminJWTSecret string
	JWTExpiry      int64
	GoogleClientID string
	StripeSecret   string
	StripeWebhook  string
	UploadDir      string
	DeliveryFee    float64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DB", "rebuy"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", "your-admin-secret-key"),
		JWTExpiry:      getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		StripeSecret:   getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhook:  getEnv("STRIPE_WEBHOOK_SECRET", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		DeliveryFee:    getEnvAsFloat64("DELIVERY_FEE", 350),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}
