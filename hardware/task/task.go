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

// Package task runs functions in the background such that they can be
// cancelled cooperatively. A cancelled function is never killed; it is
// expected to check its context at suitable points (between frames of an
// animation or between notes of a tune) and to return promptly.
//
// The Slot type ensures that at most one task is running for a resource at
// any one time. Starting a new task in a Slot cancels the running task and
// waits for it to end before the new task begins.
package task

import (
	"context"
	"sync"
	"time"
)

// Task is a handle to a function running in its own goroutine.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start runs the function in a new goroutine. The context passed to the
// function is cancelled when Stop() is called.
func Start(f func(ctx context.Context)) *Task {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()
		f(ctx)
	}()

	return t
}

// Stop requests that the task end and waits for it to do so. It is safe to
// call Stop() more than once and on a task that has already ended.
func (t *Task) Stop() {
	t.cancel()
	<-t.done
}

// Wait blocks until the task has ended.
func (t *Task) Wait() {
	<-t.done
}

// Done returns a channel that is closed when the task has ended.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Running returns true if the task has not yet ended.
func (t *Task) Running() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Sleep pauses for the duration or until the context is cancelled, whichever
// happens first. Returns false if the context was cancelled.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	tmr := time.NewTimer(d)
	defer tmr.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-tmr.C:
		return true
	}
}

// Slot holds at most one running task. The zero value is ready to use.
type Slot struct {
	crit sync.Mutex
	task *Task
}

// Start cancels any task currently in the slot, waits for it to end and then
// starts the new task. Concurrent calls to Start() are serialised so the
// functions of two tasks in the same slot never run at the same time.
//
// Start must not be called from the function of a task running in the same
// slot.
func (s *Slot) Start(f func(ctx context.Context)) *Task {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.task != nil {
		s.task.Stop()
	}
	s.task = Start(f)

	return s.task
}

// Stop cancels any task in the slot and waits for it to end. Returns true if a
// task was still running when Stop() was called.
func (s *Slot) Stop() bool {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.task == nil {
		return false
	}

	running := s.task.Running()
	s.task.Stop()
	s.task = nil

	return running
}

// Busy returns true if the slot contains a task that has not yet ended.
func (s *Slot) Busy() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.task != nil && s.task.Running()
}
