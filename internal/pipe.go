package internal

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// An Interval is an ordered pair of numbers. Start may be greater than End,
// which simply reverses the direction of a mapping.
type Interval struct {
	Start float64
	End   float64
}

func (iv Interval) Min() float64 {
	return math.Min(iv.Start, iv.End)
}

func (iv Interval) Max() float64 {
	return math.Max(iv.Start, iv.End)
}

func (iv Interval) IsDegenerate() bool {
	return iv.Start == iv.End
}

// Widen a degenerate interval so it can be divided by.
func (iv Interval) widened() Interval {
	if iv.IsDegenerate() {
		return Interval{iv.Start, iv.Start + 1}
	}
	return iv
}

// Overflow decides what a Pipe does with inputs that fall outside its domain.
type Overflow int

const (
	// Out of domain inputs map linearly to out of range outputs.
	Extend Overflow = iota
	// Outputs are clamped to the range.
	Saturate
)

func (o Overflow) String() string {
	switch o {
	case Extend:
		return "extend"
	case Saturate:
		return "saturate"
	}
	return "Overflow(" + strconv.Itoa(int(o)) + ")"
}

func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "extend":
		return Extend, nil
	case "saturate":
		return Saturate, nil
	}
	return Extend, errors.Errorf("unknown overflow policy %q", s)
}

func (o Overflow) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Overflow) UnmarshalText(text []byte) error {
	parsed, err := ParseOverflow(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// A Pipe linearly maps values from a domain interval onto a range interval. It
// is used to project raw coordinates into scene space and into UV space.
//
// Pipes are values. The configuration methods return a configured copy and
// never change the receiver, so a Pipe can be shared freely.
type Pipe struct {
	domain   Interval
	rng      Interval
	overflow Overflow
}

// Create a pipe mapping domain onto rng, extending out of domain values. A
// degenerate domain is widened to [start, start+1].
func NewPipe(domain, rng Interval) Pipe {
	return Pipe{domain: domain.widened(), rng: rng, overflow: Extend}
}

// Infer a pipe from a sample of values. Both the domain and the range are the
// extent of the sample, so the pipe starts out as the identity. An empty sample
// gives [0, 1].
func PipeFromSample(sample []float64) Pipe {
	if len(sample) == 0 {
		return NewPipe(Interval{0, 1}, Interval{0, 1})
	}
	lo, hi := sample[0], sample[0]
	for _, v := range sample[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	extent := Interval{lo, hi}.widened()
	return NewPipe(extent, extent)
}

// The pipe used for texture coordinates: degrees of longitude or latitude onto
// [0, 1], saturating.
func UVPipe() Pipe {
	return NewPipe(Interval{-180, 180}, Interval{0, 1}).SetOverflow(Saturate)
}

func (p Pipe) SetDomain(domain Interval) Pipe {
	p.domain = domain.widened()
	return p
}

func (p Pipe) FitTo(rng Interval) Pipe {
	p.rng = rng
	return p
}

func (p Pipe) SetOverflow(overflow Overflow) Pipe {
	p.overflow = overflow
	return p
}

func (p Pipe) Domain() Interval {
	return p.domain
}

func (p Pipe) Range() Interval {
	return p.rng
}

func (p Pipe) Overflow() Overflow {
	return p.overflow
}

// Map a single value. The interpolation is written as a weighted sum of the
// range endpoints so that the domain endpoints land exactly on the range
// endpoints.
func (p Pipe) Apply(value float64) float64 {
	t := (value - p.domain.Start) / (p.domain.End - p.domain.Start)
	result := p.rng.Start*(1-t) + p.rng.End*t
	if p.overflow == Saturate {
		result = math.Max(p.rng.Min(), math.Min(p.rng.Max(), result))
	}
	return result
}

// Map every value of a sample into a fresh slice.
func (p Pipe) Convert(values []float64) []float64 {
	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = p.Apply(v)
	}
	return result
}
