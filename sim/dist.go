// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// A Lengther is a source of branch lengths.
type Lengther interface {
	// Rand returns a random branch length.
	Rand() float64

	// String output for the function name and parameters.
	String() string
}

// Constant is a fixed branch length.
type Constant float64

// Rand returns the constant value.
func (c Constant) Rand() float64 {
	return float64(c)
}

// String output for the function name and parameters.
func (c Constant) String() string {
	return fmt.Sprintf("constant=%.6f", float64(c))
}

// Uniform is an uniform distribution of branch lengths.
type Uniform struct {
	Param distuv.Uniform
}

// Rand returns a random value from the distribution.
func (u Uniform) Rand() float64 {
	return u.Param.Rand()
}

// String output for the function name and parameters.
func (u Uniform) String() string {
	return fmt.Sprintf("uniform=%.6f,%.6f", u.Param.Min, u.Param.Max)
}

// Exponential is an exponential distribution of branch lengths.
type Exponential struct {
	Param distuv.Exponential
}

// Rand returns a random value from the distribution.
func (e Exponential) Rand() float64 {
	return e.Param.Rand()
}

// String output for the function name and parameters.
func (e Exponential) String() string {
	return fmt.Sprintf("exponential=%.6f", e.Param.Rate)
}

// Gamma is a gamma distribution of branch lengths.
type Gamma struct {
	Param distuv.Gamma
}

// Rand returns a random value from the distribution.
func (g Gamma) Rand() float64 {
	return g.Param.Rand()
}

// String output for the function name and parameters.
func (g Gamma) String() string {
	return fmt.Sprintf("gamma=%.6f,%.6f", g.Param.Alpha, g.Param.Beta)
}

// LogNormal is a log normal distribution of branch lengths.
type LogNormal struct {
	Param distuv.LogNormal
}

// Rand returns a random value from the distribution.
func (ln LogNormal) Rand() float64 {
	return ln.Param.Rand()
}

// String output for the function name and parameters.
func (ln LogNormal) String() string {
	return fmt.Sprintf("lognormal=%.6f,%.6f", ln.Param.Mu, ln.Param.Sigma)
}

// Discrete is a continuous distribution
// discretized in equal probability categories.
type Discrete struct {
	name string
	cats []float64
}

// Quantiler is a interfaces for distributions
// with a Quantile function
// (the inverse of the CDF function).
type quantiler interface {
	Quantile(p float64) float64
}

// Discretize returns a discretized version
// of a distribution with n categories.
// It panics if the distribution
// does not have a Quantile method.
func Discretize(l Lengther, n int) Discrete {
	var q quantiler
	switch d := l.(type) {
	case Uniform:
		q = d.Param
	case Exponential:
		q = d.Param
	case Gamma:
		q = d.Param
	case LogNormal:
		q = d.Param
	default:
		panic(fmt.Sprintf("distribution %q can not be discretized", l))
	}

	cats := make([]float64, n)
	for i := range cats {
		p := (float64(i) + 0.5) / float64(n)
		cats[i] = q.Quantile(p)
	}
	return Discrete{
		name: fmt.Sprintf("%s:%d", l, n),
		cats: cats,
	}
}

// Cats returns the values of the different categories.
func (d Discrete) Cats() []float64 {
	return append([]float64(nil), d.cats...)
}

// Rand returns the value of a random category.
func (d Discrete) Rand() float64 {
	return d.cats[rand.IntN(len(d.cats))]
}

// String output for the function name and parameters.
func (d Discrete) String() string {
	return d.name
}

// ParseLengther returns a branch length distribution
// from a string of the form <name>=<params>,
// for example "gamma=2,1".
// Valid names are:
//
//	constant=<length>
//	uniform=<min>,<max>
//	exponential=<rate>
//	gamma=<alpha>,<beta>
//	lognormal=<mu>,<sigma>
//
// A suffix ":<n>" discretizes the distribution
// in n categories,
// for example "gamma=2,1:4".
func ParseLengther(s string) (Lengther, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	name, args, ok := strings.Cut(s, "=")
	if !ok {
		return nil, fmt.Errorf("invalid distribution %q: expecting <name>=<params>", s)
	}
	args, cat, discrete := strings.Cut(args, ":")

	var p []float64
	for _, a := range strings.Split(args, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid distribution %q: %v", s, err)
		}
		p = append(p, v)
	}

	want := 1
	var l Lengther
	switch name {
	case "constant", "const":
		if len(p) == want {
			l = Constant(p[0])
		}
	case "uniform":
		want = 2
		if len(p) == want {
			if p[0] > p[1] {
				return nil, fmt.Errorf("invalid distribution %q: minimum greater than maximum", s)
			}
			l = Uniform{Param: distuv.Uniform{Min: p[0], Max: p[1]}}
		}
	case "exponential", "exp":
		if len(p) == want {
			l = Exponential{Param: distuv.Exponential{Rate: p[0]}}
		}
	case "gamma":
		want = 2
		if len(p) == want {
			l = Gamma{Param: distuv.Gamma{Alpha: p[0], Beta: p[1]}}
		}
	case "lognormal":
		want = 2
		if len(p) == want {
			l = LogNormal{Param: distuv.LogNormal{Mu: p[0], Sigma: p[1]}}
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", name)
	}
	if l == nil {
		return nil, fmt.Errorf("invalid distribution %q: got %d parameters, want %d", s, len(p), want)
	}

	if !discrete {
		return l, nil
	}
	if _, ok := l.(Constant); ok {
		return nil, fmt.Errorf("invalid distribution %q: a constant can not be discretized", s)
	}
	n, err := strconv.Atoi(cat)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid distribution %q: invalid number of categories %q", s, cat)
	}
	return Discretize(l, n), nil
}
