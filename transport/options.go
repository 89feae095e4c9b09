package transport

import "time"

// Config holds the dispatcher configuration.
type Config struct {
	// ResponseTimeout bounds how long SendCommand waits for its response
	ResponseTimeout time.Duration

	// ReadChunkSize is the reader's buffer size per read call. Chunked
	// reads keep syscall overhead bounded; at 115200 baud a byte arrives
	// roughly every 86µs, so byte-at-a-time reads would thrash.
	ReadChunkSize int

	// NotificationBuffer is the capacity of the notification channel.
	// When it is full, further notifications are dropped and logged.
	NotificationBuffer int

	// Logger receives dispatcher diagnostics (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ResponseTimeout:    2 * time.Second,
		ReadChunkSize:      1024,
		NotificationBuffer: 64,
		Logger:             nopLogger{},
	}
}

// Option is a functional option for configuring the Dispatcher.
type Option func(*Config)

// WithResponseTimeout sets how long SendCommand waits for a matching
// response before failing with ErrTimeout. Default is 2 seconds.
//
// Example:
//
//	d := transport.NewDispatcher(ch, transport.WithResponseTimeout(500*time.Millisecond))
func WithResponseTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ResponseTimeout = timeout
		}
	}
}

// WithReadChunkSize sets the reader's per-call buffer size. Default is 1024.
func WithReadChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ReadChunkSize = size
		}
	}
}

// WithNotificationBuffer sets the notification channel capacity. Default is 64.
func WithNotificationBuffer(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.NotificationBuffer = size
		}
	}
}

// WithLogger sets a logger for dispatcher diagnostics.
//
// Example:
//
//	d := transport.NewDispatcher(ch, transport.WithLogger(transport.NewZerologLogger(zl)))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
