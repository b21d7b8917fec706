package irbits

import (
	"github.com/hupe1980/irbits/codec"
)

type options struct {
	codec  codec.Codec
	logger *Logger
}

// Option configures a Registry.
type Option func(*options)

// WithCodec configures the codec used to decode profile files.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures the registry logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
