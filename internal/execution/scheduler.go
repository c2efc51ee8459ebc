package execution

// Scheduler distributes suite indexes across workers
type Scheduler interface {
	Schedule(count int, workerCount int) [][]int
}

// RoundRobinScheduler distributes suites evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes indexes 0..count-1 evenly across workers using
// round-robin. Each bucket stays in ascending order.
func (s *RoundRobinScheduler) Schedule(count int, workerCount int) [][]int {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > count && count > 0 {
		workerCount = count
	}

	distribution := make([][]int, workerCount)
	for i := range distribution {
		distribution[i] = make([]int, 0)
	}

	for i := 0; i < count; i++ {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], i)
	}

	return distribution
}
