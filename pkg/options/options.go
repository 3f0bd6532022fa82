package options

import "log/slog"

// DefaultOptions are used when a pipeline is built without options.
var DefaultOptions = PipelineOptions{
	Workers:     0,
	Alphabet:    "abcdefghijklmnopqrstuvwxyz",
	FoldAccents: false,
}

type PipelineOptions struct {
	Workers     int // correction goroutines, 0 = one per CPU
	Alphabet    string
	Exemptions  []string // extra words never corrected
	WordList    []string // extra known words without frequency
	FoldAccents bool
	Logger      *slog.Logger
}

type Options interface {
	Apply(options *PipelineOptions)
}

type FuncConfig struct {
	ops func(options *PipelineOptions)
}

func (w FuncConfig) Apply(conf *PipelineOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *PipelineOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) PipelineOptions {
	o := DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

func WithWorkers(workers int) Options {
	return NewFuncOption(func(options *PipelineOptions) {
		options.Workers = workers
	})
}

func WithAlphabet(alphabet string) Options {
	return NewFuncOption(func(options *PipelineOptions) {
		if alphabet != "" {
			options.Alphabet = alphabet
		}
	})
}

// WithExemptions adds words that bypass correction, on top of the built-in
// titles and symbols.
func WithExemptions(words ...string) Options {
	return NewFuncOption(func(options *PipelineOptions) {
		options.Exemptions = append(options.Exemptions, words...)
	})
}

func WithWordList(words []string) Options {
	return NewFuncOption(func(options *PipelineOptions) {
		options.WordList = append(options.WordList, words...)
	})
}

func WithAccentFolding() Options {
	return NewFuncOption(func(options *PipelineOptions) {
		options.FoldAccents = true
	})
}

func WithLogger(logger *slog.Logger) Options {
	return NewFuncOption(func(options *PipelineOptions) {
		options.Logger = logger
	})
}
