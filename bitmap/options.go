package bitmap

import "fmt"

// DefaultMaxCells bounds rows*cols accepted by Parse, FromRows and FromFunc
// (~2 GiB of []bool).
const DefaultMaxCells = 1<<31 - 1

// DefaultSeparator is written between cells by Encode.
const DefaultSeparator = ""

// Option configures Parse, Encode and the Bitmap constructors.
type Option func(*options)

// options holds the effective configuration after applying Option setters.
type options struct {
	maxCells  int    // Parse, constructors: upper bound for rows*cols; DefaultMaxCells
	separator string // Encode: text between two cells of a row; DefaultSeparator
}

// WithMaxCells caps rows*cols for Parse, FromRows, FromFunc and CheckSize.
// Panics on n <= 0.
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("bitmap: WithMaxCells: n must be > 0, got %d", n))
	}
	return func(o *options) { o.maxCells = n }
}

// WithSeparator sets the text Encode writes between cells.
// Panics if sep holds anything but spaces or tabs, since the result must re-parse.
func WithSeparator(sep string) Option {
	for i := 0; i < len(sep); i++ {
		if sep[i] != ' ' && sep[i] != '\t' {
			panic(fmt.Sprintf("bitmap: WithSeparator: %q is not blank", sep))
		}
	}
	return func(o *options) { o.separator = sep }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{maxCells: DefaultMaxCells, separator: DefaultSeparator}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
