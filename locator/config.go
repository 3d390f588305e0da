package locator

import (
	"math"
	"time"
)

// TimeoutKind selects which timeout has to be set.
type TimeoutKind uint8

const (
	// ConnectTimeout limits a time to establish a connection.
	ConnectTimeout TimeoutKind = iota + 1

	// TransferTimeout limits a time of the whole request, including
	// reading of the response.
	TransferTimeout
)

func (t TimeoutKind) String() string {
	switch t {
	case ConnectTimeout:
		return "connect"
	case TransferTimeout:
		return "transfer"
	}

	return "unknown"
}

const (
	DefaultConnectTimeout  = 2 * time.Second
	DefaultTransferTimeout = 3 * time.Second
	DefaultPrecision       = PrecisionCity

	maxTimeoutSeconds = float64(math.MaxInt64) / float64(time.Second)
)

// Config is a set of lookup parameters. It is a value: all With*
// methods return an updated copy and never change the original.
type Config struct {
	precision       Precision
	connectTimeout  time.Duration
	transferTimeout time.Duration
	useBackupFirst  bool
}

func (c Config) Precision() Precision {
	return c.precision
}

func (c Config) ConnectTimeout() time.Duration {
	return c.connectTimeout
}

func (c Config) TransferTimeout() time.Duration {
	return c.transferTimeout
}

func (c Config) UseBackupFirst() bool {
	return c.useBackupFirst
}

// Timeout returns a value of the given timeout. Unknown kinds have
// 0 timeout.
func (c Config) Timeout(kind TimeoutKind) time.Duration {
	switch kind {
	case ConnectTimeout:
		return c.connectTimeout
	case TransferTimeout:
		return c.transferTimeout
	}

	return 0
}

func (c Config) WithPrecision(precision Precision) (Config, error) {
	if !precision.valid() {
		return c, invalidConfigurationf("unknown precision %d", precision)
	}

	c.precision = precision

	return c, nil
}

// WithTimeout sets a timeout in seconds. Fractions are allowed, 0
// means no timeout. Positive values below a nanosecond become
// a nanosecond; values which do not fit into time.Duration are
// rejected.
func (c Config) WithTimeout(kind TimeoutKind, seconds float64) (Config, error) {
	if math.IsNaN(seconds) || seconds < 0 || seconds >= maxTimeoutSeconds {
		return c, invalidConfigurationf("invalid %s timeout %v", kind, seconds)
	}

	value := time.Duration(seconds * float64(time.Second))
	if value == 0 && seconds > 0 {
		value = time.Nanosecond
	}

	switch kind {
	case ConnectTimeout:
		c.connectTimeout = value
	case TransferTimeout:
		c.transferTimeout = value
	default:
		return c, invalidConfigurationf("unknown timeout kind %d", kind)
	}

	return c, nil
}

func (c Config) WithUseBackupFirst(value bool) Config {
	c.useBackupFirst = value

	return c
}

// DefaultConfig returns a config with city precision, 2 seconds of
// connect timeout and 3 seconds of transfer timeout.
func DefaultConfig() Config {
	return Config{
		precision:       DefaultPrecision,
		connectTimeout:  DefaultConnectTimeout,
		transferTimeout: DefaultTransferTimeout,
	}
}
