package crack

import (
	"github.com/rs/zerolog"

	"github.com/krehermann/xorcrack/english"
)

// DefaultMinLetterRatio rejects candidates that are mostly not letters or
// spaces.
const DefaultMinLetterRatio = 0.7

type config struct {
	minLetterRatio float64
	workers        int
	table          *english.Table
	log            zerolog.Logger
}

func newConfig(opts []Option) config {
	c := config{
		minLetterRatio: DefaultMinLetterRatio,
		workers:        1,
		table:          &english.Frequencies,
		log:            zerolog.Nop(),
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

type Option func(*config)

func WithMinLetterRatio(r float64) Option {
	return func(c *config) { c.minLetterRatio = r }
}

// WithWorkers scores keys on n goroutines. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

func WithTable(t *english.Table) Option {
	return func(c *config) { c.table = t }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}
