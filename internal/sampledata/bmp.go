package sampledata

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// ParseHexColor parses "#rrggbb" or "#rgb" (the leading # is optional).
func ParseHexColor(value string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("sampledata: color %q must be hex like #ff0000", value)
	}
	var out RGB
	for i, dst := range []*uint8{&out.R, &out.G, &out.B} {
		var v uint8
		for _, c := range []byte(s[i*2 : i*2+2]) {
			v <<= 4
			switch {
			case c >= '0' && c <= '9':
				v |= c - '0'
			case c >= 'a' && c <= 'f':
				v |= c - 'a' + 10
			case c >= 'A' && c <= 'F':
				v |= c - 'A' + 10
			default:
				return RGB{}, fmt.Errorf("sampledata: color %q must be hex like #ff0000", value)
			}
		}
		*dst = v
	}
	return out, nil
}

// WritePhotoSet writes count solid-color BMP photos into dir, rotating hue
// across the set so adjacent photos are visually distinct. Filenames are
// photo_001.bmp, photo_002.bmp, and so on.
func WritePhotoSet(dir string, count, width, height int, baseColor string) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("sampledata: photo count must be positive, got %d", count)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sampledata: photo dimensions must be positive, got %dx%d", width, height)
	}
	base, err := ParseHexColor(baseColor)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sampledata: create %s: %w", dir, err)
	}

	paths := make([]string, 0, count)
	for i := 0; i < count; i++ {
		color := rotateColor(base, i, count)
		path := filepath.Join(dir, fmt.Sprintf("photo_%03d.bmp", i+1))
		if err := writeBMP(path, width, height, color); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// rotateColor shifts the base color's hue across roughly 144 degrees and
// raises saturation toward the end of the series.
func rotateColor(base RGB, index, count int) RGB {
	h, s, l := rgbToHSL(base)

	t := 0.0
	if count > 1 {
		t = float64(index) / float64(count-1)
	}
	const hueSpan = 0.4
	h = math.Mod(h+(t-0.5)*hueSpan+1.0, 1.0)
	s = math.Min(1.0, s+t*(1.0-s)*1.25)
	l = math.Min(1.0, math.Max(0.0, l*(0.9+0.2*(0.5-math.Abs(t-0.5)))))

	return hslToRGB(h, s, l)
}

// writeBMP writes a 24-bit uncompressed BMP with a solid color. Rows are
// bottom-up and padded to a 4-byte boundary.
func writeBMP(path string, width, height int, color RGB) error {
	rowBytes := width * 3
	padding := (4 - rowBytes%4) % 4
	imageSize := (rowBytes + padding) * height
	const headerSize = 54

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sampledata: create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	// BITMAPFILEHEADER
	w.WriteString("BM")
	binary.Write(w, binary.LittleEndian, uint32(headerSize+imageSize))
	binary.Write(w, binary.LittleEndian, uint32(0))
	binary.Write(w, binary.LittleEndian, uint32(headerSize))

	// BITMAPINFOHEADER
	binary.Write(w, binary.LittleEndian, uint32(40))
	binary.Write(w, binary.LittleEndian, int32(width))
	binary.Write(w, binary.LittleEndian, int32(height))
	binary.Write(w, binary.LittleEndian, uint16(1))
	binary.Write(w, binary.LittleEndian, uint16(24))
	binary.Write(w, binary.LittleEndian, uint32(0))
	binary.Write(w, binary.LittleEndian, uint32(imageSize))
	binary.Write(w, binary.LittleEndian, int32(0))
	binary.Write(w, binary.LittleEndian, int32(0))
	binary.Write(w, binary.LittleEndian, uint32(0))
	binary.Write(w, binary.LittleEndian, uint32(0))

	row := make([]byte, rowBytes+padding)
	for x := 0; x < width; x++ {
		row[x*3] = color.B
		row[x*3+1] = color.G
		row[x*3+2] = color.R
	}
	for y := 0; y < height; y++ {
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("sampledata: write rows: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("sampledata: flush %s: %w", path, err)
	}
	return nil
}

func rgbToHSL(c RGB) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	return h, s, l
}

func hslToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	conv := func(t float64) uint8 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		var v float64
		switch {
		case t < 1.0/6:
			v = p + (q-p)*6*t
		case t < 1.0/2:
			v = q
		case t < 2.0/3:
			v = p + (q-p)*(2.0/3-t)*6
		default:
			v = p
		}
		return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
	}

	return RGB{R: conv(h + 1.0/3), G: conv(h), B: conv(h - 1.0/3)}
}
