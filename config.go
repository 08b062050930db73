package dhash

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Hasher names accepted by Config.
const (
	HasherPolynomial = "polynomial"
	HasherXXHash     = "xxhash"
)

// Config is the file form of the table options.
type Config struct {
	Capacity      int     `toml:"capacity"`
	Hasher        string  `toml:"hasher"`
	MaxLoadFactor float64 `toml:"max_load_factor"`
}

func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		Hasher:   HasherPolynomial,
	}
}

// LoadConfig reads a TOML file. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Newf("config %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Capacity < 1 {
		return ErrInvalidCapacity
	}
	if c.MaxLoadFactor < 0 || c.MaxLoadFactor >= 1 {
		return ErrInvalidLoadFactor
	}
	if _, err := hasherByName(c.Hasher); err != nil {
		return err
	}
	return nil
}

// Options converts the config into constructor options.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	h, _ := c.NewHasher()
	return []Option{
		WithCapacity(c.Capacity),
		WithHasher(h),
		WithMaxLoadFactor(c.MaxLoadFactor),
	}, nil
}

// NewHasher returns the Hasher named by the config.
func (c Config) NewHasher() (Hasher, error) {
	return hasherByName(c.Hasher)
}

func hasherByName(name string) (Hasher, error) {
	switch name {
	case "", HasherPolynomial:
		return DefaultHasher, nil
	case HasherXXHash:
		return XXHasher{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownHasher, "%q", name)
	}
}
