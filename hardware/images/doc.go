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

// Package images implements the lightness bitmaps used by the LED matrix.
//
// An Image is a grid of lightness values in the range 0 to 9. Images are
// created from a literal string:
//
//	img, err := images.Parse("09090:99999:99999:09990:00900")
//
// where each row is separated by a colon or a newline. Whitespace is ignored.
// Images can also be created with NewImage() and NewPackedImage().
//
// Geometric operations (shifting, cropping, joining) and arithmetic operations
// (Add, Subtract, Scale) always return a new Image. Arithmetic results are
// clamped to the valid lightness range.
//
// The library images (Heart, Happy, etc.) and the font glyphs returned by
// Glyph() are read-only. Attempts to modify them with SetPixel(), Fill() or
// Blit() fail with the ReadOnly error. Use Copy() to get a mutable version.
package images
