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

package test

import (
	"testing"
)

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a testing fatality.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v')", value, value, expectedValue)
	}
}

// DemandSuccess tests argument v for a success condition suitable for it's
// type. If the test fails it is a testing fatality.
func DemandSuccess(t *testing.T, v any) {
	t.Helper()
	if s, failed := isFailure(v); failed {
		t.Fatalf("success test of type %T failed: %s", v, s)
	}
}

// DemandFailure tests argument v for a failure condition suitable for it's
// type. If the test fails it is a testing fatality.
func DemandFailure(t *testing.T, v any) {
	t.Helper()
	if v == nil {
		t.Fatalf("failure test of type %T failed: nil is a success condition", v)
	}
	if _, failed := isFailure(v); !failed {
		t.Fatalf("failure test of type %T failed: %v", v, v)
	}
}
