// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package paint

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrBinOrder is returned when the color bins
// are not in descending order,
// or if they overlap.
var ErrBinOrder = errors.New("color bins must be in descending order and can not overlap")

// A Bin is a range of values
// with an associated color.
type Bin struct {
	Upper float64
	Lower float64
	Color color.RGBA
}

// Bins is a list of color bins
// sorted in descending order.
type Bins []Bin

// Color returns the color of the first bin
// that includes the value.
// The lower value of each bin is inclusive,
// and the upper value is exclusive,
// except for the highest bin,
// in which the upper value is inclusive.
// If no bin includes the value,
// it returns false.
func (b Bins) Color(v float64) (color.Color, bool) {
	for i, bn := range b {
		if i == 0 {
			if v > bn.Upper {
				return nil, false
			}
		} else if v >= bn.Upper {
			continue
		}
		if v < bn.Lower {
			continue
		}
		return bn.Color, true
	}
	return nil, false
}

// Validate returns an error if a bin has a lower value
// greater than its upper value,
// or if the bins are not sorted in descending order,
// or they overlap.
func (b Bins) Validate() error {
	for i, bn := range b {
		if bn.Lower > bn.Upper {
			return fmt.Errorf("bin %d: lower value %.6f greater than upper value %.6f", i+1, bn.Lower, bn.Upper)
		}
		if i == 0 {
			continue
		}
		last := b[i-1]
		if bn.Upper > last.Lower || last.Upper < bn.Lower {
			return fmt.Errorf("%w: bin %d [%.6f, %.6f] after bin [%.6f, %.6f]", ErrBinOrder, i+1, bn.Lower, bn.Upper, last.Lower, last.Upper)
		}
	}
	return nil
}

// ReadBins reads a set of color bins
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - upper, the upper value of the bin
//   - lower, the lower value of the bin
//   - color, the color of the bin,
//     either as an hexadecimal value (e.g., "ff0000" or "#ff0000"),
//     or an RGB value separated by commas (e.g., "255,0,0")
//
// Bins must be sorted in descending order.
// Here is an example file:
//
//	upper	lower	color
//	1	0.75	ff0000
//	0.75	0.5	255,165,0
//	0.5	0	#0000ff
func ReadBins(r io.Reader) (Bins, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"upper", "lower", "color"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	var b Bins
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "upper"
		up, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "lower"
		low, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "color"
		c, err := ParseColor(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		b = append(b, Bin{
			Upper: up,
			Lower: low,
			Color: c,
		})
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

type tomlBins struct {
	Bin []struct {
		Upper float64 `toml:"upper"`
		Lower float64 `toml:"lower"`
		Color string  `toml:"color"`
	} `toml:"bin"`
}

// ReadBinsTOML reads a set of color bins
// from a TOML file,
// in which each bin is defined in a [[bin]] table.
// Here is an example file:
//
//	[[bin]]
//	upper = 1.0
//	lower = 0.5
//	color = "ff0000"
//
//	[[bin]]
//	upper = 0.5
//	lower = 0.0
//	color = "0,0,255"
func ReadBinsTOML(r io.Reader) (Bins, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var tb tomlBins
	if err := toml.Unmarshal(data, &tb); err != nil {
		return nil, err
	}

	b := make(Bins, 0, len(tb.Bin))
	for i, bn := range tb.Bin {
		c, err := ParseColor(bn.Color)
		if err != nil {
			return nil, fmt.Errorf("bin %d: %v", i+1, err)
		}
		b = append(b, Bin{
			Upper: bn.Upper,
			Lower: bn.Lower,
			Color: c,
		})
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseColor returns a color
// from an hexadecimal string (e.g., "ff0000" or "#ff0000")
// or an RGB value separated by commas (e.g., "255,0,0").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		val := strings.Split(s, ",")
		if len(val) != 3 {
			return color.RGBA{}, fmt.Errorf("invalid color %q: found %d values, want 3", s, len(val))
		}
		var rgb [3]uint8
		for i, v := range val {
			c, err := strconv.ParseUint(strings.TrimSpace(v), 10, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
			}
			rgb[i] = uint8(c)
		}
		return color.RGBA{rgb[0], rgb[1], rgb[2], 255}, nil
	}

	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expecting 6 hexadecimal digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// Hex returns a color as an hexadecimal string
// (without the "#" prefix).
func Hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
