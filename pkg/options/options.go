package options

const LowercaseLatin = "abcdefghijklmnopqrstuvwxyz"

// DefaultOptions enables every single-edit operation over a..z.
var DefaultOptions = CorrectorOptions{
	Alphabet:    LowercaseLatin,
	Deletes:     true,
	Substitutes: true,
	Inserts:     true,
	Transposes:  true,
	Splits:      true,
}

type CorrectorOptions struct {
	Alphabet    string // letters tried by substitution and insertion
	Deletes     bool
	Substitutes bool
	Inserts     bool
	Transposes  bool
	Splits      bool // two-word candidates joined by a single space
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Build applies opts on top of DefaultOptions.
func Build(opts ...Options) CorrectorOptions {
	conf := DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	return conf
}

func WithAlphabet(alphabet string) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Alphabet = alphabet
	})
}

func WithoutDeletes() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Deletes = false
	})
}

func WithoutSubstitutes() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Substitutes = false
	})
}

func WithoutInserts() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Inserts = false
	})
}

func WithoutTransposes() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Transposes = false
	})
}

// WithoutSplits disables two-word candidates such as "a cat" for "acat".
func WithoutSplits() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Splits = false
	})
}
