package bitvector

import "math/big"

// Range describes a span of bits by an optional stop and an optional step.
//
// The supported shapes are:
//
//	Span(stop, step)  stop >= 0, step > 0   bits [step, step+stop] shifted down, width stop+1
//	Upto(stop)        stop > 0              low stop bits, width stop
//	Upto(stop)        stop < 0              low -stop bits, reversed
//	Span(stop, step)  stop < 0, step < 0    low -stop bits, reversed
//	Span(stop, step)  stop < 0, step > 0    -stop bits starting at step, reversed
//	From(step)        step > 0              bits from step to the width, width width-step
//	Whole()                                 the whole vector
//
// A step of zero counts as no step. Any other combination is rejected with
// *ErrInvalidSelector.
type Range struct {
	stop, step       int
	hasStop, hasStep bool
}

// Whole selects the whole vector.
func Whole() Range { return Range{} }

// Upto selects the low stop bits, or the low -stop bits reversed when stop
// is negative.
func Upto(stop int) Range { return Range{stop: stop, hasStop: true} }

// From selects the bits from step up to the width.
func From(step int) Range { return Range{step: step, hasStep: true} }

// Span sets both stop and step.
func Span(stop, step int) Range {
	return Range{stop: stop, step: step, hasStop: true, hasStep: true}
}

// Stop returns the stop component and whether it is set.
func (r Range) Stop() (int, bool) { return r.stop, r.hasStop }

// Step returns the step component and whether it is set.
func (r Range) Step() (int, bool) { return r.step, r.hasStep }

type extractMode uint8

const (
	modeInvalid extractMode = iota
	modeSpan
	modeLow
	modeLowReversed
	modeSpanReversed
	modeFrom
	modeWhole
)

// classify maps a Range to its extraction mode.
func classify(r Range) extractMode {
	step, hasStep := r.step, r.hasStep && r.step != 0

	switch {
	case !r.hasStop && !hasStep:
		return modeWhole
	case !r.hasStop && step > 0:
		return modeFrom
	case !r.hasStop:
		return modeInvalid
	case r.stop >= 0 && hasStep && step > 0:
		return modeSpan
	case r.stop > 0 && !hasStep:
		return modeLow
	case r.stop < 0 && (!hasStep || step < 0):
		return modeLowReversed
	case r.stop < 0 && step > 0:
		return modeSpanReversed
	default:
		return modeInvalid
	}
}

// Selector is one of Extract, ExtractAndInvert or ExtractAndCompare.
type Selector interface {
	selectorRange() Range
}

// Extract returns the selected range.
type Extract struct {
	Range Range
}

// ExtractAndInvert returns the complement of the selected range over its width.
type ExtractAndInvert struct {
	Range Range
}

// ExtractAndCompare reports whether the selected range equals Target. When
// Target is negative the bitwise complement of the range is compared instead.
type ExtractAndCompare struct {
	Range  Range
	Target Integer
}

func (s Extract) selectorRange() Range           { return s.Range }
func (s ExtractAndInvert) selectorRange() Range  { return s.Range }
func (s ExtractAndCompare) selectorRange() Range { return s.Range }

// Selection is the result of Select. Vector is set for Extract and
// ExtractAndInvert; Match is set for ExtractAndCompare.
type Selection struct {
	Vector *BitVector
	Match  bool
}

// Select extracts the range named by sel and applies its post-processing.
func (v *BitVector) Select(sel Selector) (Selection, error) {
	switch s := sel.(type) {
	case *Extract:
		sel = *s
	case *ExtractAndInvert:
		sel = *s
	case *ExtractAndCompare:
		sel = *s
	}

	ext, err := v.extract(sel.selectorRange())
	if err != nil {
		return Selection{}, err
	}

	switch s := sel.(type) {
	case Extract:
		return Selection{Vector: ext}, nil
	case ExtractAndInvert:
		return Selection{Vector: ext.Invert()}, nil
	case ExtractAndCompare:
		target := s.Target.BigInt()
		if target.Sign() < 0 {
			ext = ext.Not()
		}
		return Selection{Match: ext.value.Cmp(target) == 0}, nil
	default:
		panic("bitvector: unknown selector type")
	}
}

// Slice is shorthand for Select(Extract{r}).
func (v *BitVector) Slice(r Range) (*BitVector, error) {
	s, err := v.Select(Extract{Range: r})
	return s.Vector, err
}

// SliceInverted is shorthand for Select(ExtractAndInvert{r}).
func (v *BitVector) SliceInverted(r Range) (*BitVector, error) {
	s, err := v.Select(ExtractAndInvert{Range: r})
	return s.Vector, err
}

// Matches is shorthand for Select(ExtractAndCompare{r, target}).
func (v *BitVector) Matches(r Range, target Integer) (bool, error) {
	s, err := v.Select(ExtractAndCompare{Range: r, Target: target})
	return s.Match, err
}

func (v *BitVector) extract(r Range) (*BitVector, error) {
	switch classify(r) {
	case modeSpan:
		return v.derive(new(big.Int).Rsh(v.value, uint(r.step)), r.stop+1), nil
	case modeLow:
		return v.derive(new(big.Int).Set(v.value), r.stop), nil
	case modeLowReversed:
		return v.ReverseN(-r.stop), nil
	case modeSpanReversed:
		shifted := v.derive(new(big.Int).Rsh(v.value, uint(r.step)), -r.stop)
		return shifted.ReverseN(-r.stop), nil
	case modeFrom:
		return v.derive(new(big.Int).Rsh(v.value, uint(r.step)), v.width-r.step), nil
	case modeWhole:
		return v.Clone(), nil
	default:
		return nil, &ErrInvalidSelector{Stop: r.stop, Step: r.step, HasStop: r.hasStop, HasStep: r.hasStep}
	}
}

// Bit returns the bit at position i, counting from the least-significant
// bit. Negative values are read in two's complement.
func (v *BitVector) Bit(i Integer) (int, error) {
	pos, err := smallUint(i, ErrNegativeIndex)
	if err != nil {
		return 0, err
	}
	return int(v.value.Bit(int(pos))), nil
}

// SetAt ORs x << offset into v in place. The width grows to cover the
// written bits: max(width, offset + x.NumBits()).
func (v *BitVector) SetAt(offset, x Integer) (*BitVector, error) {
	pos, err := smallUint(offset, ErrNegativeIndex)
	if err != nil {
		return v, err
	}
	width := x.NumBits()
	v.value.Or(v.value, new(big.Int).Lsh(x.BigInt(), pos))
	v.width = max(v.width, int(pos)+width)
	return v, nil
}
