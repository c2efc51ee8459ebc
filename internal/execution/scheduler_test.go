package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobinScheduler_Schedule(t *testing.T) {
	s := NewRoundRobinScheduler()

	tests := []struct {
		name    string
		count   int
		workers int
		want    [][]int
	}{
		{"single worker", 3, 1, [][]int{{0, 1, 2}}},
		{"even split", 4, 2, [][]int{{0, 2}, {1, 3}}},
		{"more workers than suites", 2, 4, [][]int{{0}, {1}}},
		{"zero workers falls back to one", 2, 0, [][]int{{0, 1}}},
		{"no suites", 0, 2, [][]int{{}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Schedule(tt.count, tt.workers))
		})
	}
}
