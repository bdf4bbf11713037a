package probe

import "fmt"

// Mask is a decoded single-channel mask.
type Mask struct {
	Width  int
	Height int
}

// Image is a decoded source image in canonical RGB channel order.
type Image struct {
	Width    int
	Height   int
	Channels int // Always 3 after conversion; never compared against masks.
}

// String returns the shape as "HxW" (rows first).
func (m Mask) String() string {
	return fmt.Sprintf("%dx%d", m.Height, m.Width)
}

// String returns the shape as "HxWxC" (rows first).
func (i Image) String() string {
	return fmt.Sprintf("%dx%dx%d", i.Height, i.Width, i.Channels)
}
