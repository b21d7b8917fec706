package bitvector

import "github.com/hupe1980/irbits/timing"

type options struct {
	width       int
	hasWidth    bool
	table       timing.Table
	hasTable    bool
	encoding    timing.Encoding
	hasEncoding bool
}

// Option configures New.
type Option func(*options)

// WithWidth sets an explicit width. A non-negative value is masked to its
// low width bits; a negative value is stored unchanged.
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = width
		o.hasWidth = true
	}
}

// WithTimingTable attaches a timing table used by Timings.
//
// The table is copied. Its length is checked when Timings is called.
func WithTimingTable(table timing.Table) Option {
	return func(o *options) {
		o.table = table.Clone()
		o.hasTable = true
	}
}

// WithEncoding sets the bit grouping direction used by Timings.
// The default is timing.LSBFirst.
func WithEncoding(enc timing.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
		o.hasEncoding = true
	}
}
