package rpn

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	num "github.com/shabbyrobe/go-bignum"
)

// Config is the calculator configuration. It can be loaded from a TOML file:
//
//	max_bits = 65536
//	output_base = 16
//	precision = 20
type Config struct {
	// MaxBits bounds the size of shift, multiply and power results. 0 selects
	// num.DefaultLimits; values above num.MaxBitsCeiling are clamped.
	MaxBits uint64 `toml:"max_bits"`

	// OutputBase is used to print integers, 2 to 36.
	OutputBase int `toml:"output_base"`

	// Precision is the number of fractional digits printed for floats and
	// fractions. 0 prints floats in their shortest form and fractions as n/d.
	Precision int `toml:"precision"`
}

func DefaultConfig() Config {
	return Config{
		MaxBits:    num.DefaultLimits.MaxBits,
		OutputBase: 10,
	}
}

// LoadConfig reads a TOML file over the values already in cfg.
func LoadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "rpn: load config %q", path)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return errors.Newf("rpn: unknown config key %q in %q", undec[0].String(), path)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.OutputBase < 2 || c.OutputBase > 36 {
		return errors.Newf("rpn: output base %d out of range 2..36", c.OutputBase)
	}
	if c.Precision < 0 {
		return errors.Newf("rpn: negative precision %d", c.Precision)
	}
	return nil
}

func (c Config) Limits() num.Limits {
	return num.Limits{MaxBits: c.MaxBits}
}
