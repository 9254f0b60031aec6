// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Checkout    CheckoutConfig
	CORS        CORSConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type CheckoutConfig struct {
	FreeShippingThreshold float64
	ShippingFee           float64
	TaxRate               float64
	ProcessingDelay       time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Checkout: CheckoutConfig{
			FreeShippingThreshold: getEnvAsFloat("CHECKOUT_FREE_SHIPPING_THRESHOLD", 75.0),
			ShippingFee:           getEnvAsFloat("CHECKOUT_SHIPPING_FEE", 9.99),
			TaxRate:               getEnvAsFloat("CHECKOUT_TAX_RATE", 0.08),
			ProcessingDelay:       time.Duration(getEnvAsInt("CHECKOUT_PROCESSING_DELAY_MS", 1000)) * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Checkout.TaxRate < 0 || c.Checkout.TaxRate >= 1 {
		return fmt.Errorf("tax rate must be in [0, 1), got %v", c.Checkout.TaxRate)
	}

	if c.Checkout.ShippingFee < 0 {
		return fmt.Errorf("shipping fee must not be negative, got %v", c.Checkout.ShippingFee)
	}

	if c.Checkout.FreeShippingThreshold < 0 {
		return fmt.Errorf("free shipping threshold must not be negative, got %v", c.Checkout.FreeShippingThreshold)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
