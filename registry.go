package irbits

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/hupe1980/irbits/bitvector"
	"github.com/hupe1980/irbits/codec"
)

// profileFile is the on-disk layout of a profile configuration.
type profileFile struct {
	Profiles []Profile `json:"profiles"`
}

// Registry holds named protocol profiles.
//
// A Registry is safe for concurrent use. The BitVectors it returns are not.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	opts     options
}

// NewRegistry creates an empty registry.
func NewRegistry(optFns ...Option) *Registry {
	opts := options{
		codec:  codec.Default,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Registry{
		profiles: make(map[string]Profile),
		opts:     opts,
	}
}

// Register validates p and adds it to the registry.
func (r *Registry) Register(ctx context.Context, p Profile) error {
	err := r.register(p)
	r.opts.logger.LogRegister(ctx, p.Name, err)
	return err
}

func (r *Registry) register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.Timings = p.Timings.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProfile, p.Name)
	}
	r.profiles[p.Name] = p
	return nil
}

// Load decodes a profile configuration from rd and registers every profile
// in it. It returns the number of profiles registered before the first
// error.
//
// The configuration layout is:
//
//	{"profiles": [{"name": "nec", "timings": [560, -560, 560, -1690], "encoding": "lsb_first", "width": 32}]}
func (r *Registry) Load(ctx context.Context, rd io.Reader) (int, error) {
	n, err := r.load(ctx, rd)
	r.opts.logger.LogLoad(ctx, r.opts.codec.Name(), n, err)
	return n, err
}

func (r *Registry) load(ctx context.Context, rd io.Reader) (int, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return 0, fmt.Errorf("read profiles: %w", err)
	}

	var file profileFile
	if err := r.opts.codec.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("decode profiles (%s): %w", r.opts.codec.Name(), err)
	}

	for i, p := range file.Profiles {
		if err := r.Register(ctx, p); err != nil {
			return i, err
		}
	}
	return len(file.Profiles), nil
}

// LoadFile is like Load but reads the configuration from path.
func (r *Registry) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return r.Load(ctx, f)
}

// Lookup returns the profile registered under name.
func (r *Registry) Lookup(name string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	p.Timings = p.Timings.Clone()
	return p, nil
}

// Names returns the registered profile names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.profiles))
}

// Frame wraps value in a BitVector carrying the named profile's timing context.
func (r *Registry) Frame(name string, value bitvector.Integer) (*bitvector.BitVector, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return p.Frame(value), nil
}

// Encode frames value with the named profile and returns its pulse train.
func (r *Registry) Encode(ctx context.Context, name string, value bitvector.Integer) ([]int, error) {
	frame, err := r.Frame(name, value)
	if err != nil {
		r.opts.logger.LogEncode(ctx, name, 0, 0, err)
		return nil, err
	}

	pulses, err := frame.Timings()
	r.opts.logger.LogEncode(ctx, name, frame.NumBits(), len(pulses), err)
	return pulses, err
}
