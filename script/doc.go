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

// Package script implements an input system that processes instructions from a
// board script. A script drives the board the same way a user would, so it can
// be used to automate demonstrations and to replay recorded sessions.
//
// The first line of a script file must be the word bitsimscript. The second
// line is the version of the program that created the script and is currently
// ignored.
//
// The script language is very simple and does not implement any flow control
// except basic loops.
//
//	DO loopCt [loopName]
//		...
//	LOOP
//
// The 'loopName' parameter is optional. When a loop is named the current
// counter value can be referenced in any argument with the % symbol. For
// example, if a loop has been given the name "ct" then the following will
// scroll the counter value.
//
//	SCROLL %ct
//
// Loops can be nested.
//
// Arguments are split in the same way as a shell command line. Quotes can be
// used to include spaces in an argument.
//
//	SCROLL "HELLO WORLD"
//
// The WAIT instruction will pause the execution of the script for the
// specified number of milliseconds. If no value is given the wait is one
// second.
//
// Instructions that act like a user of the board:
//
//	PRESS A|B, RELEASE A|B, CLICK A|B
//	TILT x y                  tilt the board. angles are in degrees
//	ORIENT m00 m01 ... m22    set the orientation matrix directly
//	GESTURE name, CLEARGESTURES
//	PIN id level              drive the input of a pin
//	FIELD strength direction  set the magnetic field. direction in degrees
//	TEMP t                    set the temperature
//	RESET
//
// Instructions that act like a program running on the board:
//
//	SHOW value [delay] [NOWAIT] [LOOP] [CLEAR]
//	SCROLL text [delay] [NOWAIT] [LOOP] [MONO]
//	IMAGE literal             show an image literal such as 09090:99999:...
//	PIXEL x y v, CLEAR, DISPLAY ON|OFF
//	PLAY melody|notes... [NOWAIT] [LOOP]
//	PITCH freq ms [NOWAIT]
//	TEMPO ticks bpm
//	STOP
//	CALIBRATE
//
// The value for SHOW can be the name of a library image (eg. HEART), a
// number or text.
//
// Finally, there are instructions that affect the script itself.
//
//	ECHO text...              write the text to the log
//	MEMVIZ filename           write a graphviz description of the board state
//	QUIT                      end the script
//
// Any error in a script will stop execution. The error will include the
// script name and line number.
//
// Lines can be commented by prefixing the line with two dashes (--). Leading
// and trailing white space is ignored.
//
// The Recorder type creates scripts from the events received by the board.
package script
