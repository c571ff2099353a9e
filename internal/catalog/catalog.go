// Package catalog holds the fixed table of test integrands with known
// integrals over the unit square.
package catalog

import "math"

// Class groups integrands by smoothness, for listings only.
type Class string

const (
	// ClassDiscontinuous marks integrands with a jump discontinuity.
	ClassDiscontinuous Class = "discontinuous"
	// ClassPiecewiseLinear marks continuous integrands with kinks.
	ClassPiecewiseLinear Class = "piecewise-linear"
	// ClassSmooth marks infinitely differentiable integrands.
	ClassSmooth Class = "smooth"
)

// Integrand is a named test function paired with its true integral over the
// unit square. Eval must be total and deterministic for all finite input.
type Integrand struct {
	Name string `yaml:"name"`
	// Embedded reports whether the function uses only one coordinate of
	// each 2D sample.
	Embedded bool  `yaml:"embedded"`
	Class    Class `yaml:"class"`
	// Reference is the known true integral, the ground truth for error
	// computation.
	Reference float64                    `yaml:"reference"`
	Eval      func(x, y float64) float64 `yaml:"-"`
}

// integrands is the fixed catalog, in the historical declaration order of
// the sampler-comparison toolchain. There is no dynamic registration.
//
// The 1D-embedded entries bind each function to a specific axis of the 2D
// sample (lineary and siny read y, the rest read x). The bindings are part
// of the contract; the reference values assume them.
var integrands = []Integrand{
	{Name: "quarterdisk", Class: ClassDiscontinuous, Reference: 0.5, Eval: quarterdisk},
	{Name: "fulldisk", Class: ClassDiscontinuous, Reference: 0.5, Eval: fulldisk},
	{Name: "triangle", Class: ClassDiscontinuous, Reference: 0.5, Eval: triangle},
	{Name: "quarterdiskramp", Class: ClassPiecewiseLinear, Reference: 0.505273, Eval: quarterdiskramp},
	{Name: "fulldiskramp", Class: ClassPiecewiseLinear, Reference: 0.505273, Eval: fulldiskramp},
	{Name: "triangleramp", Class: ClassPiecewiseLinear, Reference: 0.5, Eval: triangleramp},
	{Name: "quartergaussian", Class: ClassSmooth, Reference: 0.55774629, Eval: quartergaussian}, // pi/4 erf(1)^2
	{Name: "fullgaussian", Class: ClassSmooth, Reference: 0.851121, Eval: fullgaussian},         // pi erf(0.5)^2
	{Name: "bilinear", Class: ClassSmooth, Reference: 0.25, Eval: bilinear},
	{Name: "biquadratic", Class: ClassSmooth, Reference: 1.0 / 9.0, Eval: biquadratic},
	{Name: "sinxy", Class: ClassSmooth, Reference: 0.0, Eval: sinxy},
	{Name: "sininvr", Class: ClassSmooth, Reference: -0.220242, Eval: sininvr},
	{Name: "stepx", Embedded: true, Class: ClassDiscontinuous, Reference: 1.0 / math.Pi, Eval: onX(step)},
	{Name: "rampx", Embedded: true, Class: ClassPiecewiseLinear, Reference: 0.3, Eval: onX(ramp)},
	{Name: "lineary", Embedded: true, Class: ClassSmooth, Reference: 0.5, Eval: onY(linear)},
	{Name: "gaussianx", Embedded: true, Class: ClassSmooth, Reference: 0.74682413, Eval: onX(gaussian1D)}, // sqrt(pi)/2 erf(1)
	{Name: "siny", Embedded: true, Class: ClassSmooth, Reference: 2.0 / math.Pi, Eval: onY(sin1)},
	{Name: "sin2x", Embedded: true, Class: ClassSmooth, Reference: 0.0, Eval: onX(sin2)},
}

// Lookup resolves an integrand by exact, case-sensitive name.
func Lookup(name string) (Integrand, bool) {
	for _, ig := range integrands {
		if ig.Name == name {
			return ig, true
		}
	}
	return Integrand{}, false
}

// Integrands returns the catalog in declaration order.
func Integrands() []Integrand {
	out := make([]Integrand, len(integrands))
	copy(out, integrands)
	return out
}
