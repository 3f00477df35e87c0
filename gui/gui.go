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

// Package gui contains the types and functions shared by the front ends in the
// sub-packages. A front end draws the board and turns the input of the user
// into userinput events.
package gui

import (
	"context"

	"github.com/jetsetilly/bitsim/logger"
	"github.com/jetsetilly/bitsim/userinput"
)

// GUI is the interface implemented by every front end.
type GUI interface {
	// Run the front end until the user quits or the context is done.
	Run(ctx context.Context) error
}

// Service passes events from the channel to the board until the user quits or
// the context is done. Service returns true if the user quit. Errors from the
// board are logged and do not stop the service.
func Service(ctx context.Context, events <-chan userinput.Event, board userinput.HandleInput) bool {
	var c userinput.Controllers
	for {
		select {
		case <-ctx.Done():
			return false
		case ev := <-events:
			if err := c.HandleUserInput(ev, board); err != nil {
				logger.Log(logger.Allow, "gui", err)
			}
			if c.Quit {
				return true
			}
		}
	}
}
