// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
)

// Gradienter is an interface for types
// that return a color gradient
// for values between 0 and 1.
type Gradienter interface {
	Gradient(v float64) color.Color
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GrayScale returns a gray scale
// between 200 (light gray)
// and 0 (black).
type GrayScale struct{}

func (g GrayScale) Gradient(v float64) color.Color {
	c := 200 - uint8(clamp(v)*200)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

// NewGradient returns a gradient by its name.
// Valid names are "gray",
// "incandescent",
// "iridescent",
// and "rainbow".
func NewGradient(name string) (Gradienter, error) {
	switch strings.ToLower(name) {
	case "gray", "grey":
		return GrayScale{}, nil
	case "incandescent":
		return Incandescent{}, nil
	case "iridescent":
		return Iridescent{}, nil
	case "rainbow":
		return RainbowPurpleToRed{}, nil
	}
	return nil, fmt.Errorf("unknown gradient %q", name)
}

// Scale maps a range of values
// into a color gradient.
type Scale struct {
	Gradient Gradienter
	Min, Max float64
}

// NewScale returns a scale
// using the minimum and maximum values
// of a set of values.
func NewScale(g Gradienter, v Values) Scale {
	s := Scale{Gradient: g}
	first := true
	for _, x := range v {
		if first {
			s.Min, s.Max = x, x
			first = false
			continue
		}
		s.Min = min(s.Min, x)
		s.Max = max(s.Max, x)
	}
	return s
}

// Color returns the color of a value in the gradient.
func (s Scale) Color(v float64) (color.Color, bool) {
	if s.Max <= s.Min {
		return s.Gradient.Gradient(1), true
	}
	return s.Gradient.Gradient((v - s.Min) / (s.Max - s.Min)), true
}
