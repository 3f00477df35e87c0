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
	"math"
	"testing"
)

// checks that the value is either a bool or an error and returns a string
// describing a failure state. returns the empty string if there is no failure
func isFailure(v any) (string, bool) {
	switch v := v.(type) {
	case bool:
		if !v {
			return "false", true
		}
	case error:
		if v != nil {
			return v.Error(), true
		}
	case nil:
	default:
		return "unsupported type", true
	}
	return "", false
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v')", value, value, expectedValue)
	}
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v')", value, value, expectedValue)
	}
}

// ExpectApproximate is used to test approximate equality between one floating
// point value and another.
func ExpectApproximate[T ~float32 | ~float64](t *testing.T, value T, expectedValue T, tolerance float64) {
	t.Helper()
	if math.Abs(float64(value)-float64(expectedValue)) > tolerance {
		t.Errorf("approximation test of type %T failed: '%v' is not within %v of '%v')", value, value, tolerance, expectedValue)
	}
}

// ExpectFailure tests argument v for a failure condition suitable for it's
// type. Types bool and error are treated thus:
//
//	bool == false
//	error != nil
//
// If type is nil then the test will fail.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	if v == nil {
		t.Errorf("failure test of type %T failed: nil is a success condition", v)
		return false
	}

	switch v.(type) {
	case bool, error:
	default:
		t.Fatalf("unsupported type (%T) for failure testing", v)
		return false
	}

	if _, failed := isFailure(v); !failed {
		t.Errorf("failure test of type %T failed: %v", v, v)
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for it's
// type. Types bool and error are treated thus:
//
//	bool == true
//	error == nil
//
// If type is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v.(type) {
	case bool, error, nil:
	default:
		t.Fatalf("unsupported type (%T) for success testing", v)
		return false
	}

	if s, failed := isFailure(v); failed {
		t.Errorf("success test of type %T failed: %s", v, s)
		return false
	}

	return true
}
