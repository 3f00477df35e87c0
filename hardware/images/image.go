// This file is part of Bitsim.
//
// Bitsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bitsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bitsim.  If not, see <https://www.gnu.org/licenses/>.

package images

import (
	"strings"

	"github.com/jetsetilly/bitsim/curated"
	"github.com/jetsetilly/bitsim/mathx"
)

// MaxLightness is the brightest value a pixel can have.
const MaxLightness = 9

// Sentinal errors.
const (
	ReadOnly        = "images: image is read-only"
	HeightMismatch  = "images: heights do not match (%d and %d)"
	BadLiteral      = "images: bad literal: %s"
	InvalidArgument = "images: %s"
)

// Image is a rectangular grid of lightness values. The grid is stored in
// column order, which makes horizontal operations cheap.
type Image struct {
	width  int
	height int

	// cols[x][y]
	cols [][]uint8

	readOnly bool
}

// NewImage creates a blank image of the specified size. Negative dimensions
// are treated as zero.
func NewImage(width int, height int) *Image {
	width = max(width, 0)
	height = max(height, 0)

	img := &Image{
		width:  width,
		height: height,
		cols:   make([][]uint8, width),
	}
	for x := range img.cols {
		img.cols[x] = make([]uint8, height)
	}

	return img
}

// NewPackedImage creates an image of the specified size and initialises it
// with a string of digits. The digits fill the image a row at a time and any
// colons or whitespace in the string are ignored. If there are fewer digits
// than pixels the remaining pixels are zero. Extra digits are ignored.
func NewPackedImage(width int, height int, packed string) (*Image, error) {
	img := NewImage(width, height)

	packed = strings.Map(func(r rune) rune {
		switch r {
		case ':', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, packed)

	for i, r := range packed {
		if i >= img.width*img.height {
			break
		}
		if r < '0' || r > '9' {
			return nil, curated.Errorf(BadLiteral, packed)
		}
		img.cols[i%img.width][i/img.width] = uint8(r - '0')
	}

	return img, nil
}

// Parse creates an image from a literal string. Rows are separated by a colon
// or a newline and all rows must be the same length.
func Parse(literal string) (*Image, error) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r':
			return -1
		case '\n':
			return ':'
		}
		return r
	}, literal)

	var rows []string
	for _, r := range strings.Split(s, ":") {
		if r != "" {
			rows = append(rows, r)
		}
	}

	if len(rows) == 0 {
		return NewImage(0, 0), nil
	}

	img := NewImage(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != img.width {
			return nil, curated.Errorf(BadLiteral, "rows must be the same length")
		}
		for x, r := range row {
			if r < '0' || r > '9' {
				return nil, curated.Errorf(BadLiteral, row)
			}
			img.cols[x][y] = uint8(r - '0')
		}
	}

	return img, nil
}

// MustParse is like Parse() but panics if the literal is not valid. For use
// with literals that are known to be correct.
func MustParse(literal string) *Image {
	img, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return img
}

// library images are read-only
func library(literal string) *Image {
	img := MustParse(literal)
	img.readOnly = true
	return img
}

// Width of image in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height of image in pixels.
func (img *Image) Height() int {
	return img.height
}

// IsReadOnly returns true if the image cannot be modified.
func (img *Image) IsReadOnly() bool {
	return img.readOnly
}

func (img *Image) inBounds(x int, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// At returns the lightness of the pixel. Pixels outside the image have a
// lightness of zero.
func (img *Image) At(x int, y int) int {
	if !img.inBounds(x, y) {
		return 0
	}
	return int(img.cols[x][y])
}

// GetPixel returns the lightness of the pixel. Unlike At() it is an error to
// ask for a pixel outside the image.
func (img *Image) GetPixel(x int, y int) (int, error) {
	if !img.inBounds(x, y) {
		return 0, curated.Errorf(InvalidArgument, "pixel coordinates out of range")
	}
	return int(img.cols[x][y]), nil
}

// SetPixel sets the lightness of the pixel.
func (img *Image) SetPixel(x int, y int, v int) error {
	if img.readOnly {
		return curated.Errorf(ReadOnly)
	}
	if !img.inBounds(x, y) {
		return curated.Errorf(InvalidArgument, "pixel coordinates out of range")
	}
	if !mathx.Between(v, 0, MaxLightness) {
		return curated.Errorf(InvalidArgument, "lightness out of range")
	}
	img.cols[x][y] = uint8(v)
	return nil
}

// Fill sets every pixel in the image to the lightness value.
func (img *Image) Fill(v int) error {
	if img.readOnly {
		return curated.Errorf(ReadOnly)
	}
	if !mathx.Between(v, 0, MaxLightness) {
		return curated.Errorf(InvalidArgument, "lightness out of range")
	}
	for _, c := range img.cols {
		for y := range c {
			c[y] = uint8(v)
		}
	}
	return nil
}

// Copy returns a mutable copy of the image. The copy of a read-only image is
// not read-only.
func (img *Image) Copy() *Image {
	c := NewImage(img.width, img.height)
	for x := range img.cols {
		copy(c.cols[x], img.cols[x])
	}
	return c
}

// Invert returns a new image with every lightness value inverted.
func (img *Image) Invert() *Image {
	c := img.Copy()
	for _, col := range c.cols {
		for y := range col {
			col[y] = MaxLightness - col[y]
		}
	}
	return c
}

// Blit copies the w by h area of src at x, y into the image at xdest, ydest.
// The area is clipped to the bounds of the destination image. Parts of the
// area outside of src are copied as zero.
func (img *Image) Blit(src *Image, x, y, w, h, xdest, ydest int) error {
	if img.readOnly {
		return curated.Errorf(ReadOnly)
	}
	img.blit(src, x, y, w, h, xdest, ydest)
	return nil
}

func (img *Image) blit(src *Image, x, y, w, h, xdest, ydest int) {
	for cx := 0; cx < w; cx++ {
		for cy := 0; cy < h; cy++ {
			if img.inBounds(xdest+cx, ydest+cy) {
				img.cols[xdest+cx][ydest+cy] = uint8(src.At(x+cx, y+cy))
			}
		}
	}
}

// Crop returns a new image of size w by h, copied from the image at x, y.
// Parts of the new image outside of the original image are zero.
func (img *Image) Crop(x, y, w, h int) *Image {
	c := NewImage(w, h)
	c.blit(img, x, y, w, h, 0, 0)
	return c
}

// ShiftLeft returns a new image with the n leftmost columns removed. The new
// image is narrower than the original. A negative n shifts to the right.
func (img *Image) ShiftLeft(n int) *Image {
	if n < 0 {
		return img.ShiftRight(-n)
	}
	return img.Crop(n, 0, img.width-n, img.height)
}

// ShiftRight returns a new image with the n rightmost columns removed. A
// negative n shifts to the left.
func (img *Image) ShiftRight(n int) *Image {
	if n < 0 {
		return img.ShiftLeft(-n)
	}
	return img.Crop(0, 0, img.width-n, img.height)
}

// ShiftUp returns a new image with the n top rows removed. A negative n
// shifts down.
func (img *Image) ShiftUp(n int) *Image {
	if n < 0 {
		return img.ShiftDown(-n)
	}
	return img.Crop(0, n, img.width, img.height-n)
}

// ShiftDown returns a new image with the n bottom rows removed. A negative n
// shifts up.
func (img *Image) ShiftDown(n int) *Image {
	if n < 0 {
		return img.ShiftUp(-n)
	}
	return img.Crop(0, 0, img.width, img.height-n)
}

// Join returns a new image with other placed to the right of the image. Both
// images must have the same height.
func (img *Image) Join(other *Image) (*Image, error) {
	if img.height != other.height {
		return nil, curated.Errorf(HeightMismatch, img.height, other.height)
	}
	j := NewImage(img.width+other.width, img.height)
	j.blit(img, 0, 0, img.width, img.height, 0, 0)
	j.blit(other, 0, 0, other.width, other.height, img.width, 0)
	return j, nil
}

// combine creates a new image big enough for both images and sets every
// pixel with the result of f(), clamped to the valid lightness range.
func (img *Image) combine(other *Image, f func(a, b int) int) *Image {
	c := NewImage(max(img.width, other.width), max(img.height, other.height))
	for x := range c.cols {
		for y := range c.cols[x] {
			c.cols[x][y] = uint8(mathx.Clamp(f(img.At(x, y), other.At(x, y)), 0, MaxLightness))
		}
	}
	return c
}

// Add returns a new image where each pixel is the sum of the pixels in the
// two images. The result is the size of the larger of the two images in each
// dimension.
func (img *Image) Add(other *Image) *Image {
	return img.combine(other, func(a, b int) int { return a + b })
}

// Subtract returns a new image where each pixel is the pixel in other
// subtracted from the pixel in the image. The result is the size of the
// larger of the two images in each dimension.
func (img *Image) Subtract(other *Image) *Image {
	return img.combine(other, func(a, b int) int { return a - b })
}

// Scale returns a new image with every pixel multiplied by n. Fractional
// results are truncated.
func (img *Image) Scale(n float64) *Image {
	c := NewImage(img.width, img.height)
	for x := range c.cols {
		for y := range c.cols[x] {
			c.cols[x][y] = uint8(mathx.Clamp(int(float64(img.cols[x][y])*n), 0, MaxLightness))
		}
	}
	return c
}

// Equal returns true if both images are the same size and have the same
// lightness values. Whether an image is read-only does not matter.
func (img *Image) Equal(other *Image) bool {
	if img.width != other.width || img.height != other.height {
		return false
	}
	for x := range img.cols {
		for y := range img.cols[x] {
			if img.cols[x][y] != other.cols[x][y] {
				return false
			}
		}
	}
	return true
}

func (img *Image) rows(sep string) string {
	s := strings.Builder{}
	for y := 0; y < img.height; y++ {
		if y > 0 {
			s.WriteString(sep)
		}
		for x := 0; x < img.width; x++ {
			s.WriteByte('0' + img.cols[x][y])
		}
	}
	return s.String()
}

// String returns the image as a literal string, with rows separated by
// colons. The string can be used with Parse() to create an identical image.
func (img *Image) String() string {
	return img.rows(":")
}

// Lines returns the image with every row on a separate line.
func (img *Image) Lines() string {
	return img.rows("\n")
}
