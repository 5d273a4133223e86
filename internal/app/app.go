package app

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DatabasePath    string
	SessionLifetime time.Duration
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	addr := getenv("ADDR", ":8080")
	dbPath := getenv("DATABASE_PATH", "./gallerie.db")
	lifeHours := getenv("SESSION_LIFETIME_HOURS", "24")
	dur, err := time.ParseDuration(lifeHours + "h")
	if err != nil {
		dur = 24 * time.Hour
	}
	return Config{
		Addr:            addr,
		DatabasePath:    dbPath,
		SessionLifetime: dur,
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func Must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
