// internal/pkg/logger/logger.go
package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/config"
)

// Setup configures the global logrus logger from the loaded config
func Setup(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Logging.Format == "json" || cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}
