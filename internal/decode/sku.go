// Package decode turns semi-structured spreadsheet text into typed values:
// product codes, free-text receive dates, staff initials.
package decode

import (
	"regexp"
	"strconv"
	"strings"
)

const specialPrefix = "SP-"

var (
	skuPattern    = regexp.MustCompile(`^(\d{2})([A-Z]{2})(\d{4,})`)
	basePattern   = regexp.MustCompile(`^[A-Z]+\d*`)
	seriesPattern = regexp.MustCompile(`^(?:SP-)?(\d{2})`)
	postPattern   = regexp.MustCompile(`^(\d+)P$`)
	trailingParen = regexp.MustCompile(`\(.*\)$`)
)

var shapeNames = map[string]string{
	"TC": "Rectangular",
	"SQ": "Square",
	"RD": "Round",
	"SC": "Semicircle",
	"CS": "C-Shape",
	"HR": "Horse Race",
	"RT": "Racetrack",
	"OV": "Oval",
	"KD": "Kidney",
	"TR": "Trapezoid",
	"PW": "Power",
}

// SKU is a decoded product code. The zero value means the code did not
// match the series/shape/size grammar.
type SKU struct {
	Shape     string
	ShapeName string
	Size      string
	BaseType  string

	Special    bool
	PostConfig *int
	Options    []string
}

// DecodeSKU splits a code such as "SP-99SQ3030QD16-3P-LC" into shape, size
// and base components.
func DecodeSKU(code string) SKU {
	clean, special := strings.CutPrefix(code, specialPrefix)

	m := skuPattern.FindStringSubmatchIndex(clean)
	if m == nil {
		return SKU{}
	}
	shape := clean[m[4]:m[5]]
	size := clean[m[6]:m[7]]

	out := SKU{
		Shape:     shape,
		ShapeName: ShapeName(shape),
		Size:      formatSize(size),
		Special:   special,
	}

	remainder := clean[m[1]:]
	main, suffixes, _ := strings.Cut(remainder, "-")
	out.BaseType = basePattern.FindString(main)
	if suffixes != "" {
		out.PostConfig, out.Options = decodeSuffixes(strings.Split(suffixes, "-"))
	}
	return out
}

// ShapeName resolves a two-letter shape code; unknown codes name themselves.
func ShapeName(code string) string {
	if name, ok := shapeNames[code]; ok {
		return name
	}
	return code
}

// Series returns the two-digit series prefix of code, or "".
func Series(code string) string {
	m := seriesPattern.FindStringSubmatch(code)
	if m == nil {
		return ""
	}
	return m[1]
}

func formatSize(size string) string {
	if len(size) < 4 {
		return size
	}
	return size[:2] + `"x` + size[2:4] + `"`
}

func decodeSuffixes(parts []string) (*int, []string) {
	var posts *int
	var options []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean := trailingParen.ReplaceAllString(part, "")
		if m := postPattern.FindStringSubmatch(clean); m != nil && posts == nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				posts = &n
				continue
			}
		}
		options = append(options, part)
	}
	return posts, options
}
