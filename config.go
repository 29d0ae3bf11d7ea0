package swiftdsv

import (
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the serializable form of the codec options. Empty Delimiter and
// Escaper select the defaults; nil pointers leave the defaults in place.
type Config struct {
	Delimiter        string  `yaml:"delimiter"`
	Escaper          string  `yaml:"escaper"`
	StringifyNullish *bool   `yaml:"stringify_nullish"`
	EscapeAllFields  bool    `yaml:"escape_all_fields"`
	NullLiteral      *string `yaml:"null_literal"`
}

// LoadConfig reads a YAML document into a Config. Unknown keys are rejected and an
// empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(err, "swiftdsv: decode config")
	}
	return cfg, nil
}

// Options converts cfg into options for New. Delimiter and Escaper must each be
// exactly one character when set.
func (cfg Config) Options() ([]Option, error) {
	var opts []Option
	if cfg.Delimiter != "" {
		r, err := singleRune("delimiter", cfg.Delimiter)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDelimiter(r))
	}
	if cfg.Escaper != "" {
		r, err := singleRune("escaper", cfg.Escaper)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithEscaper(r))
	}
	if cfg.StringifyNullish != nil {
		opts = append(opts, WithStringifyNullish(*cfg.StringifyNullish))
	}
	if cfg.EscapeAllFields {
		opts = append(opts, WithEscapeAllFields(true))
	}
	if cfg.NullLiteral != nil {
		opts = append(opts, WithNullLiteral(*cfg.NullLiteral))
	}
	return opts, nil
}

// NewFromConfig builds a Codec from cfg with the same validation as New.
func NewFromConfig(cfg Config) (*Codec, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(opts...)
}

func singleRune(option, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, &ConfigError{Option: option, Value: r, Reason: "must be exactly one character"}
	}
	return r, nil
}
