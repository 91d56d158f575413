package app

import (
	"github.com/MKhiriev/hamkee/internal/config"
	"github.com/MKhiriev/hamkee/internal/httpclient"
	"github.com/MKhiriev/hamkee/internal/logger"
)

// LoggerConfig maps the log settings onto the primary sink of the process
// logger. An empty file means stdout.
func LoggerConfig(settings *config.Settings) logger.Config {
	sink := settings.Log.File
	if sink == "" {
		sink = logger.SinkStdout
	}

	return logger.Config{
		Level:      settings.Log.Level,
		Format:     settings.Log.Format,
		Sink:       sink,
		MaxSizeMB:  settings.Log.MaxSizeMB,
		MaxAgeDays: settings.Log.MaxAgeDays,
		MaxBackups: settings.Log.MaxBackups,
		Compress:   settings.Log.Compress,
	}
}

// ClientConfig maps the outbound client settings. Retryable kinds keep
// their defaults.
func ClientConfig(settings *config.Settings) httpclient.Config {
	return httpclient.Config{
		DefaultTimeout:     settings.HTTPClient.Timeout,
		MaxRetries:         settings.HTTPClient.MaxRetries,
		InsecureSkipVerify: !settings.HTTPClient.VerifySSL,
	}
}
