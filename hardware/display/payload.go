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

package display

import (
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/bitsim/hardware/images"
)

// Kind of payload.
type Kind int

// List of valid Kind values.
const (
	KindGlyph Kind = iota
	KindImage
	KindSequence
	KindScroll
)

func (k Kind) String() string {
	switch k {
	case KindGlyph:
		return "glyph"
	case KindImage:
		return "image"
	case KindSequence:
		return "sequence"
	case KindScroll:
		return "scroll"
	}
	return "unknown"
}

// Payload is anything that can be shown on the display. Payloads are created
// with the Glyph(), Image(), Sequence(), Characters(), Text(), Int() and
// Float() functions.
type Payload struct {
	kind   Kind
	glyph  rune
	image  *images.Image
	frames []*images.Image
	text   string
}

// Kind returns the kind of payload.
func (p Payload) Kind() Kind {
	return p.kind
}

// Glyph is a single character.
func Glyph(r rune) Payload {
	return Payload{
		kind:  KindGlyph,
		glyph: r,
		image: images.Glyph(r),
	}
}

// Image is shown as a single frame if it is no wider than the display.
// Otherwise it is split into five column slices and shown as a sequence.
func Image(img *images.Image) Payload {
	if img.Width() <= Width {
		return Payload{
			kind:  KindImage,
			image: img,
		}
	}

	var frames []*images.Image
	for x := 0; x < img.Width(); x += Width {
		frames = append(frames, img.Crop(x, 0, Width, img.Height()))
	}
	return Payload{
		kind:   KindSequence,
		frames: frames,
	}
}

// Sequence is a list of images shown one after the other.
func Sequence(frames ...*images.Image) Payload {
	return Payload{
		kind:   KindSequence,
		frames: frames,
	}
}

// Characters is a sequence of glyphs, one for each character in the string.
func Characters(s string) Payload {
	p := Payload{
		kind: KindSequence,
	}
	for _, r := range s {
		p.frames = append(p.frames, images.Glyph(r))
	}
	return p
}

// Text of a single character is a glyph. Any other length of text is
// scrolled.
func Text(s string) Payload {
	if len([]rune(s)) == 1 {
		return Glyph([]rune(s)[0])
	}
	return Payload{
		kind: KindScroll,
		text: s,
	}
}

// Int is the number as text.
func Int(n int) Payload {
	return Text(strconv.Itoa(n))
}

// Float is the number as text. A number with no fractional part keeps a
// single decimal place.
func Float(f float64) Payload {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return Text(s)
}

type options struct {
	delay     time.Duration
	hasDelay  bool
	wait      bool
	loop      bool
	clear     bool
	monospace bool
}

// Option changes how a Payload is shown.
type Option func(*options)

// WithDelay sets the time each frame is held for. The default depends on the
// kind of payload.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
		o.hasDelay = true
	}
}

// NoWait returns from Show() or Scroll() immediately and leaves the animation
// running in the background.
func NoWait() Option {
	return func(o *options) {
		o.wait = false
	}
}

// Loop repeats the animation until it is cancelled.
func Loop() Option {
	return func(o *options) {
		o.loop = true
	}
}

// ClearAfter clears the display when the animation ends.
func ClearAfter() Option {
	return func(o *options) {
		o.clear = true
	}
}

// Monospace scrolls text without a blank column between characters.
func Monospace() Option {
	return func(o *options) {
		o.monospace = true
	}
}

func applyOptions(opts []Option) options {
	o := options{wait: true}
	for _, f := range opts {
		f(&o)
	}
	return o
}
