package sudoku

import (
	"fmt"
	"time"
)

// InvalidDifficultyError reports a caller mistake; it is never retried.
type InvalidDifficultyError struct {
	Reason string
}

func (e InvalidDifficultyError) Error() string {
	return "invalid difficulty: " + e.Reason
}

// GenerationFailedError is returned once the full retry and fallback policy
// is exhausted. Difficulties lists every level that was attempted, in
// order.
type GenerationFailedError struct {
	Difficulties []int
	Elapsed      time.Duration
}

func (e GenerationFailedError) Error() string {
	return fmt.Sprintf(
		"puzzle generation failed after %s (difficulties tried: %v)",
		e.Elapsed.Round(time.Millisecond), e.Difficulties,
	)
}
