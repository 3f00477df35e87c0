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
	"context"
	"time"

	"github.com/jetsetilly/bitsim/hardware/images"
	"github.com/jetsetilly/bitsim/hardware/task"
	"github.com/jetsetilly/bitsim/logger"
)

// the default delays used when there is no preferences value
const (
	DefaultSequenceDelay = 400 * time.Millisecond
	DefaultScrollDelay   = 150 * time.Millisecond
)

func (d *Display) sequenceDelay() time.Duration {
	if d.env.Prefs == nil {
		return DefaultSequenceDelay
	}
	return time.Duration(d.env.Prefs.SequenceDelay.Get().(int)) * time.Millisecond
}

func (d *Display) scrollDelay() time.Duration {
	if d.env.Prefs == nil {
		return DefaultScrollDelay
	}
	return time.Duration(d.env.Prefs.ScrollDelay.Get().(int)) * time.Millisecond
}

// Show the payload on the display. Nothing happens if the display is off.
//
// The default delay for sequences is 400ms and for scrolling text it is
// 150ms. Single images and glyphs are held for the delay only if one is
// specified with WithDelay().
func (d *Display) Show(p Payload, opts ...Option) error {
	if !d.IsOn() {
		return nil
	}

	o := applyOptions(opts)

	switch p.kind {
	case KindGlyph, KindImage:
		if !o.hasDelay {
			o.delay = 0
		}
		d.run(o, func(ctx context.Context) bool {
			return d.showImage(ctx, p.image, o)
		})

	case KindSequence:
		if !o.hasDelay {
			o.delay = d.sequenceDelay()
		}
		d.run(o, func(ctx context.Context) bool {
			return d.showSequence(ctx, p.frames, o)
		})

	case KindScroll:
		return d.Scroll(p.text, opts...)
	}

	return nil
}

// Scroll the text across the display from right to left. Nothing happens if
// the display is off.
//
// The text is drawn as a single image with the glyph of every character
// joined together. Unless the Monospace() option is used, a blank column is
// placed before each glyph. The image is moved one column at a time until
// the last glyph has been shown.
//
// A single character is not scrolled. The glyph is shown and held for the
// delay.
func (d *Display) Scroll(text string, opts ...Option) error {
	if !d.IsOn() {
		return nil
	}

	o := applyOptions(opts)
	if !o.hasDelay {
		o.delay = d.scrollDelay()
	}

	r := []rune(text)
	if len(r) == 1 {
		img := images.Glyph(r[0])
		d.run(o, func(ctx context.Context) bool {
			return d.showImage(ctx, img, o)
		})
		return nil
	}

	img, err := composite(r, o.monospace)
	if err != nil {
		return err
	}

	d.run(o, func(ctx context.Context) bool {
		if img.Width() < Width {
			return true
		}
		for {
			if !d.showScroll(ctx, img, o.delay) {
				return false
			}
			if !o.loop {
				return true
			}
		}
	})

	return nil
}

// composite joins the glyph for every character into a single image.
func composite(text []rune, monospace bool) (*images.Image, error) {
	img := images.NewImage(0, Height)
	spacer := images.NewImage(1, Height)

	var err error
	for _, r := range text {
		if !monospace {
			img, err = img.Join(spacer)
			if err != nil {
				return nil, err
			}
		}
		img, err = img.Join(images.Glyph(r))
		if err != nil {
			return nil, err
		}
	}

	return img, nil
}

// run the animation in the display's task slot. the animation function
// returns false if it was cancelled.
func (d *Display) run(o options, f func(ctx context.Context) bool) {
	t := d.anim.Start(func(ctx context.Context) {
		if !f(ctx) {
			return
		}
		if o.clear {
			d.Clear()
		}
	})

	if o.wait {
		t.Wait()
	}
}

// frame draws the image unless the context has been cancelled. returns false
// if the context has been cancelled.
func (d *Display) frame(ctx context.Context, img *images.Image) bool {
	if ctx.Err() != nil {
		return false
	}
	d.draw(img)
	return true
}

func (d *Display) showImage(ctx context.Context, img *images.Image, o options) bool {
	if !d.frame(ctx, img) {
		return false
	}

	if !o.loop {
		return task.Sleep(ctx, o.delay)
	}

	// looping a single image with no delay is the same as showing it until
	// the animation is cancelled
	if o.delay <= 0 {
		<-ctx.Done()
		return false
	}

	for {
		if !task.Sleep(ctx, o.delay) {
			return false
		}
		if !d.frame(ctx, img) {
			return false
		}
	}
}

func (d *Display) showSequence(ctx context.Context, frames []*images.Image, o options) bool {
	if len(frames) == 0 {
		return true
	}

	for {
		for _, img := range frames {
			if !d.frame(ctx, img) {
				return false
			}
			if !task.Sleep(ctx, o.delay) {
				return false
			}
		}
		if !o.loop {
			return true
		}
	}
}

func (d *Display) showScroll(ctx context.Context, img *images.Image, delay time.Duration) bool {
	n := 0
	for img.Width() >= Width {
		if !d.frame(ctx, img) {
			logger.Logf(d.env, "display", "scroll cancelled after %d frames", n)
			return false
		}
		n++
		if !task.Sleep(ctx, delay) {
			return false
		}
		img = img.ShiftLeft(1)
	}
	return true
}
