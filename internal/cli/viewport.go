package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Viewport is a viewport size in pixels.
type Viewport struct {
	Width  uint `json:"width"`
	Height uint `json:"height"`
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

func ParseViewport(value string) (Viewport, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(value), "x")
	if !ok {
		return Viewport{}, fmt.Errorf("viewport %q: expected WIDTHxHEIGHT", value)
	}

	width, err := strconv.ParseUint(w, 10, 0)
	if err != nil {
		return Viewport{}, fmt.Errorf("viewport %q: width: %w", value, err)
	}

	height, err := strconv.ParseUint(h, 10, 0)
	if err != nil {
		return Viewport{}, fmt.Errorf("viewport %q: height: %w", value, err)
	}

	if width == 0 || height == 0 {
		return Viewport{}, fmt.Errorf("viewport %q: dimensions must be positive", value)
	}

	return Viewport{Width: uint(width), Height: uint(height)}, nil
}

// viewportList is a flag.Value collecting comma separated viewports.
type viewportList []Viewport

func (l *viewportList) String() string {
	if l == nil {
		return ""
	}

	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = v.String()
	}

	return strings.Join(parts, ",")
}

func (l *viewportList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		v, err := ParseViewport(part)
		if err != nil {
			return err
		}

		*l = append(*l, v)
	}

	return nil
}
