package execution

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equal compares outputs exactly: same length, same elements, same order.
// A nil and an empty sequence are equal.
func Equal(expected, actual []int64) bool {
	if len(expected) != len(actual) {
		return false
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return false
		}
	}
	return true
}

// Diff describes how actual differs from expected
func Diff(expected, actual []int64) string {
	diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty())
	return fmt.Sprintf("expected %v, got %v (-expected +actual):\n%s", expected, actual, diff)
}
