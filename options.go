package dhash

import "go.uber.org/zap"

// DefaultCapacity is the number of slots of a table built without WithCapacity.
const DefaultCapacity = 53

type options struct {
	capacity      int
	hasher        Hasher
	logger        *zap.Logger
	maxLoadFactor float64
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		hasher:   DefaultHasher,
		logger:   zap.NewNop(),
	}
}

// Option configures a Table at construction time.
type Option func(*options)

// WithCapacity sets the number of slots.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithHasher replaces the reference polynomial hash pair.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		o.hasher = h
	}
}

// WithLogger sets the logger used for resize and table-full events. A nil
// logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxLoadFactor enables growing the table once occupied plus deleted slots
// would exceed f of the capacity. Zero keeps the capacity fixed.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) {
		o.maxLoadFactor = f
	}
}

func (o options) validate() error {
	if o.capacity < 1 {
		return ErrInvalidCapacity
	}
	if o.hasher == nil {
		return ErrNilHasher
	}
	if o.maxLoadFactor < 0 || o.maxLoadFactor >= 1 {
		return ErrInvalidLoadFactor
	}
	return nil
}
