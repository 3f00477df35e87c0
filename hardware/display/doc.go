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

// Package display emulates the 5x5 LED matrix of the board.
//
// Drawing to the matrix happens either directly with SetPixel() and Clear()
// or through Show() and Scroll(), which render a Payload as one or more
// frames. A Payload is one of a single glyph, an image, a sequence of images
// or scrolling text. Images wider than the matrix are shown as a sequence of
// five column slices.
//
// Show() and Scroll() run in a task. By default the caller waits for the task
// to finish but with the NoWait() option the function returns immediately and
// the animation continues in the background. Only one animation can run at a
// time. Starting a new animation cancels the running animation and waits for
// it to stop before the first frame of the new animation is drawn. An
// animation only checks for cancellation between frames so a frame is never
// partially drawn.
//
// When the display is off every drawing operation is ignored. Switching the
// display off frees the pins that drive the matrix.
//
// The state of the matrix is polled by renderers with Image() and FrameNum().
// Alternatively, a FrameTrigger can be registered with AddFrameTrigger(), in
// which case it will be called every time the matrix changes.
package display
