// utils/safelog.go
// ============================================================================
// SAFE LOGGING - masks sensitive data in production
// ============================================================================
// Logging helpers that automatically mask personal and financial information
// when running in production mode.
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

var (
	// IsProduction controls masking. In production, sensitive data is
	// replaced before it reaches the log output.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	// LogLevel filters log output (DEBUG, INFO, WARN, ERROR).
	LogLevel = getLogLevel()
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Amounts with an explicit currency marker
	amountRegex = regexp.MustCompile(`\b\d+([.,]\d{1,2})?\s*(€|EUR|CHF|GBP|USD|£|\$)\b`)

	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// MaskString masks sensitive data in a string.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := input
	result = emailRegex.ReplaceAllString(result, "***@***.***")
	result = amountRegex.ReplaceAllString(result, "***")
	result = uuidRegex.ReplaceAllStringFunc(result, func(id string) string {
		return id[:8] + "..."
	})

	return result
}

// MaskAmount masks a monetary amount.
func MaskAmount(amount float64) string {
	if IsProduction {
		return "***"
	}
	return fmt.Sprintf("%.2f", amount)
}

// MaskEmail masks an email address.
func MaskEmail(email string) string {
	if !IsProduction {
		return email
	}
	return "***@***.***"
}

// Debugf logs a debug message (only with LOG_LEVEL=DEBUG).
func Debugf(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

// Infof logs an informational message.
func Infof(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}

// Warnf logs a warning.
func Warnf(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}
