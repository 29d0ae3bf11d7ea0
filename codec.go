package swiftdsv

const (
	defaultDelimiter   = ','
	defaultEscaper     = '"'
	defaultNullLiteral = "null"
)

// Codec decodes and encodes delimiter-separated tables for one delimiter/escaper pair.
// A Codec is immutable after New returns and is safe for concurrent use.
type Codec struct {
	grammar grammar

	stringifyNullish bool
	escapeAllFields  bool
	nullLiteral      string
}

type options struct {
	delimiter        rune
	escaper          rune
	stringifyNullish bool
	escapeAllFields  bool
	nullLiteral      string
}

// Option is a configuration setting for [New].
type Option struct{ apply func(*options) }

// WithDelimiter sets the field delimiter. The default is ','.
func WithDelimiter(r rune) Option {
	return Option{func(o *options) { o.delimiter = r }}
}

// WithEscaper sets the character that wraps escaped fields. The default is '"'.
func WithEscaper(r rune) Option {
	return Option{func(o *options) { o.escaper = r }}
}

// WithStringifyNullish controls whether nil values encode as the null literal
// (true, the default) or as an empty field.
func WithStringifyNullish(enabled bool) Option {
	return Option{func(o *options) { o.stringifyNullish = enabled }}
}

// WithEscapeAllFields forces every encoded field to be wrapped in escapers.
func WithEscapeAllFields(enabled bool) Option {
	return Option{func(o *options) { o.escapeAllFields = enabled }}
}

// WithNullLiteral sets the text written for nil values when nullish values are
// stringified. The default is "null".
func WithNullLiteral(literal string) Option {
	return Option{func(o *options) { o.nullLiteral = literal }}
}

// New validates the configuration and builds the grammar shared by the decoder
// and the encoder. Invalid delimiter or escaper values yield a *ConfigError
// matching ErrConfiguration.
func New(opts ...Option) (*Codec, error) {
	o := options{
		delimiter:        defaultDelimiter,
		escaper:          defaultEscaper,
		stringifyNullish: true,
		nullLiteral:      defaultNullLiteral,
	}
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(&o)
		}
	}

	g, err := newGrammar(o.delimiter, o.escaper)
	if err != nil {
		emitCodecRejected(o.delimiter, o.escaper, err)
		return nil, err
	}

	c := &Codec{
		grammar:          g,
		stringifyNullish: o.stringifyNullish,
		escapeAllFields:  o.escapeAllFields,
		nullLiteral:      o.nullLiteral,
	}
	emitCodecCreated(g.delimiter, g.escaper)
	return c, nil
}

// Delimiter returns the configured field delimiter.
func (c *Codec) Delimiter() rune { return c.grammar.delimiter }

// Escaper returns the configured escaper.
func (c *Codec) Escaper() rune { return c.grammar.escaper }
