package paymentprovider

import (
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"rugcare.backend/pkg/logger"
)

// zapLeveledLogger routes stripe-go's internal logging into zap
type zapLeveledLogger struct {
	sugar *zap.SugaredLogger
}

var _ stripe.LeveledLoggerInterface = (*zapLeveledLogger)(nil)

func newZapLeveledLogger() *zapLeveledLogger {
	return &zapLeveledLogger{sugar: logger.GetLogger().Named("stripe").Sugar()}
}

func (l *zapLeveledLogger) Debugf(format string, v ...interface{}) { l.sugar.Debugf(format, v...) }
// Stripe logs every request at info; keep those at debug.
func (l *zapLeveledLogger) Infof(format string, v ...interface{}) { l.sugar.Debugf(format, v...) }
func (l *zapLeveledLogger) Warnf(format string, v ...interface{}) { l.sugar.Warnf(format, v...) }
func (l *zapLeveledLogger) Errorf(format string, v ...interface{}) { l.sugar.Errorf(format, v...) }
