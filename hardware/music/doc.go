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

// Package music plays melodies and pitches on the pins of the board.
//
// A melody is a list of notes in the form NOTE[OCTAVE][:DURATION], for
// example "C#5:2". The octave and duration carry forward from one note to the
// next so that "C4:2", "D", "E" plays three notes in the fourth octave, each
// two ticks long. The length of a tick is decided by the tempo.
//
// Notes are played by setting the PWM period of the pin to the period of the
// note and writing an analog value to the pin. Every note is also pushed onto
// a tones.Queue so that an audio driver can make the note audible.
//
// Music can play in the foreground, in which case Play() and Pitch() return
// once the music has finished, or in the background with the NoWait() option.
// Each pin plays one thing at a time and starting new music on a pin first
// stops whatever was playing on it.
package music
