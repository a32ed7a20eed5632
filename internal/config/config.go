package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Stripe   StripeConfig
	Delivery DeliveryConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// DeliveryConfig is the static weekly-cycle configuration: when orders cut
// off, when packs are harvested and delivered, and the pricing knobs the
// eligibility rules need.
type DeliveryConfig struct {
	OrderCutoffWeekday    time.Weekday
	OrderCutoffHour       int
	OrderCutoffMinute     int
	SwapCutoffWeekday     time.Weekday // defaults to the order cutoff
	SwapCutoffHour        int
	SwapCutoffMinute      int
	HarvestWeekday        time.Weekday
	DeliveryWeekday       time.Weekday
	FreeShippingThreshold float64
	DeliveryFee           float64
	MonthlySwapCap        int
	Region                string
	Currency              string
	Timezone              string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	clientURL := getEnv("CLIENT_URL", "http://localhost:5173")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          clientURL,
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "FreshSprout"),
		},
		Stripe: StripeConfig{
			SecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
			SuccessURL:    getEnv("STRIPE_SUCCESS_URL", clientURL+"/checkout/success"),
			CancelURL:     getEnv("STRIPE_CANCEL_URL", clientURL+"/cart"),
		},
		Delivery: DeliveryConfig{
			OrderCutoffWeekday:    getEnvAsWeekday("ORDER_CUTOFF_WEEKDAY", time.Tuesday),
			OrderCutoffHour:       getEnvAsInt("ORDER_CUTOFF_HOUR", 22),
			OrderCutoffMinute:     getEnvAsInt("ORDER_CUTOFF_MINUTE", 0),
			SwapCutoffWeekday:     getEnvAsWeekday("SWAP_CUTOFF_WEEKDAY", getEnvAsWeekday("ORDER_CUTOFF_WEEKDAY", time.Tuesday)),
			SwapCutoffHour:        getEnvAsInt("SWAP_CUTOFF_HOUR", getEnvAsInt("ORDER_CUTOFF_HOUR", 22)),
			SwapCutoffMinute:      getEnvAsInt("SWAP_CUTOFF_MINUTE", getEnvAsInt("ORDER_CUTOFF_MINUTE", 0)),
			HarvestWeekday:        getEnvAsWeekday("HARVEST_WEEKDAY", time.Thursday),
			DeliveryWeekday:       getEnvAsWeekday("DELIVERY_WEEKDAY", time.Friday),
			FreeShippingThreshold: getEnvAsFloat("FREE_SHIPPING_THRESHOLD", 25.00),
			DeliveryFee:           getEnvAsFloat("DELIVERY_FEE", 5.00),
			MonthlySwapCap:        getEnvAsInt("MONTHLY_SWAP_CAP", 2),
			Region:                getEnv("DELIVERY_REGION", "metro"),
			Currency:              getEnv("CURRENCY", "usd"),
			Timezone:              getEnv("DELIVERY_TIMEZONE", "America/Los_Angeles"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func getEnvAsWeekday(key string, fallback time.Weekday) time.Weekday {
	if value, ok := weekdayNames[strings.ToLower(getEnv(key, ""))]; ok {
		return value
	}
	return fallback
}
