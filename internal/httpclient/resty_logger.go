package httpclient

import (
	"strings"

	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/go-resty/resty/v2"
)

// restyLogger routes resty's internal messages into the service logger.
type restyLogger struct {
	log *logger.Logger
}

var _ resty.Logger = restyLogger{}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(strings.TrimSpace(format), v...)
}
