package domain

import "fmt"

// CalculationState is a step of a single calculation's lifecycle.
type CalculationState string

const (
	StateCollecting   CalculationState = "collecting"
	StateComputing    CalculationState = "computing"
	StateComputed     CalculationState = "computed"
	StateRejected     CalculationState = "rejected"
	StateRecording    CalculationState = "recording"
	StateRecorded     CalculationState = "recorded"
	StateRecordFailed CalculationState = "record_failed"
)

var transitions = map[CalculationState][]CalculationState{
	StateCollecting:   {StateComputing},
	StateComputing:    {StateComputed, StateRejected},
	StateComputed:     {StateRecording},
	StateRecording:    {StateRecorded, StateRecordFailed},
	StateRecordFailed: {StateRecording},
}

// Terminal reports whether no further transition is possible. RecordFailed
// is terminal for an attempt but may be re-entered by a record retry.
func (s CalculationState) Terminal() bool {
	return s == StateRejected || s == StateRecorded
}

// Lifecycle tracks the state of one calculation and rejects transitions
// that skip a step.
type Lifecycle struct {
	state CalculationState
}

// NewLifecycle starts a lifecycle in the collecting state.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateCollecting}
}

// ResumeLifecycle continues a lifecycle from a known state.
func ResumeLifecycle(s CalculationState) *Lifecycle {
	return &Lifecycle{state: s}
}

func (l *Lifecycle) State() CalculationState { return l.state }

// To moves the lifecycle to next.
func (l *Lifecycle) To(next CalculationState) error {
	for _, allowed := range transitions[l.state] {
		if allowed == next {
			l.state = next
			return nil
		}
	}
	return fmt.Errorf("illegal calculation transition %s -> %s", l.state, next)
}
