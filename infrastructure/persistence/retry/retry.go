package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"

	"solid-example/config"
	"solid-example/pkg/logger"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	mysqlErrDeadlock        = 1213
	mysqlErrLockWaitTimeout = 1205
)

type Config struct {
	Enabled            bool
	MaxAttempts        int
	InitialDelay       time.Duration
	MaxDelay           time.Duration
	BackoffFactor      float64
	JitterEnabled      bool
	RetryOnDeadlock    bool
	RetryOnLockTimeout bool
	RetryPredicate     func(error) bool
}

var DefaultConfig = Config{
	Enabled:            true,
	MaxAttempts:        3,
	InitialDelay:       100 * time.Millisecond,
	MaxDelay:           2 * time.Second,
	BackoffFactor:      2.0,
	JitterEnabled:      true,
	RetryOnDeadlock:    true,
	RetryOnLockTimeout: true,
}

func FromAppConfig(retryConfig config.RetryConfig) Config {
	return Config{
		Enabled:            retryConfig.Enabled,
		MaxAttempts:        retryConfig.MaxAttempts,
		InitialDelay:       retryConfig.InitialDelay,
		MaxDelay:           retryConfig.MaxDelay,
		BackoffFactor:      retryConfig.BackoffFactor,
		JitterEnabled:      retryConfig.JitterEnabled,
		RetryOnDeadlock:    retryConfig.RetryOnDeadlock,
		RetryOnLockTimeout: retryConfig.RetryOnLockTimeout,
	}
}

func ExponentialBackoffWithJitter(attempt int, config Config) time.Duration {
	if attempt <= 0 {
		return 0
	}
	delay := float64(config.InitialDelay) * math.Pow(config.BackoffFactor, float64(attempt-1))
	if delay > float64(config.MaxDelay) {
		delay = float64(config.MaxDelay)
	}
	if config.JitterEnabled {
		jitterFactor := 0.8 + rand.Float64()*0.4
		delay = delay * jitterFactor
	}
	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

func IsRetryableError(err error, config Config) bool {
	if err == nil {
		return false
	}
	if config.RetryPredicate != nil && config.RetryPredicate(err) {
		return true
	}
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDeadlock:
			return config.RetryOnDeadlock
		case mysqlErrLockWaitTimeout:
			return config.RetryOnLockTimeout
		}
	}
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "deadlock") && config.RetryOnDeadlock {
		return true
	}
	if strings.Contains(errStr, "lock wait timeout") && config.RetryOnLockTimeout {
		return true
	}
	if errors.Is(err, mysqlDriver.ErrInvalidConn) || errors.Is(err, gorm.ErrInvalidTransaction) ||
		(strings.Contains(errStr, "connection") && strings.Contains(errStr, "lost")) {
		return true
	}
	return false
}

// ExecuteWithRetry runs fn until it succeeds, returns a non-retryable error,
// runs out of attempts, or ctx is done.
func ExecuteWithRetry(ctx context.Context, config Config, fn func(ctx context.Context) error) error {
	if !config.Enabled || config.MaxAttempts <= 1 {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn(ctx)
		if err == nil {
			return nil
		}

		lastErr = err
		if !IsRetryableError(err, config) || attempt == config.MaxAttempts {
			break
		}

		delay := ExponentialBackoffWithJitter(attempt, config)
		logger.FromContext(ctx).Debug("retrying store operation",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}

	return lastErr
}
