package config

import "os"

// Config holds everything read from the process environment at startup.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
	StripeKey    string
}

func Load() Config {
	return Config{
		Port:         getenv("PORT", "4000"),
		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName: getenv("DB_NAME", "jewelryResale"),
		StripeKey:    os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
