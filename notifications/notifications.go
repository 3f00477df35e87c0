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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user.
type Notice string

// List of defined notifications.
const (
	// the LED matrix has been switched on or off. the pins driven by the
	// screen are freed when the screen is off
	NotifyScreenOn  Notice = "NotifyScreenOn"
	NotifyScreenOff Notice = "NotifyScreenOff"

	// a tone task has started or has stopped on one of the pins
	NotifyMusicStarted Notice = "NotifyMusicStarted"
	NotifyMusicStopped Notice = "NotifyMusicStopped"

	// the compass calibration procedure has started or ended
	NotifyCalibrating Notice = "NotifyCalibrating"
	NotifyCalibrated  Notice = "NotifyCalibrated"
)

// Notify is used for direct communication between the hardware and the front
// end. Implementations must be safe to call from more than one goroutine
// because the background tasks of the board send notices.
type Notify interface {
	Notify(notice Notice) error
}
