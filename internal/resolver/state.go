package resolver

import (
	"errors"
	"fmt"
	"time"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
)

// State is a lifecycle stage of one event add or edit
type State string

const (
	StateDraft     State = "Draft"
	StateResolving State = "Resolving"
	StateResolved  State = "Resolved"
	StateCommitted State = "Committed"
	StateFailed    State = "Failed"
)

var transitions = map[State][]State{
	StateDraft:     {StateResolving, StateFailed},
	StateResolving: {StateResolved, StateFailed},
	StateResolved:  {StateCommitted, StateFailed},
}

// ErrIllegalTransition signals a programming error in the resolver
var ErrIllegalTransition = errors.New("resolver: illegal state transition")

// Transition records one state change
type Transition struct {
	From State     `json:"from"`
	To   State     `json:"to"`
	At   time.Time `json:"at"`
}

// Operation tracks a single resolve-and-commit run
type Operation struct {
	Kind    models.EventKind `json:"kind"`
	State   State            `json:"state"`
	History []Transition     `json:"history"`
	Err     error            `json:"-"`
	ErrKind apperror.Kind    `json:"error_kind,omitempty"`

	now func() time.Time
}

func newOperation(kind models.EventKind, now func() time.Time) *Operation {
	return &Operation{Kind: kind, State: StateDraft, now: now}
}

func (o *Operation) advance(to State) error {
	for _, allowed := range transitions[o.State] {
		if allowed == to {
			o.History = append(o.History, Transition{From: o.State, To: to, At: o.now()})
			o.State = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.State, to)
}

// fail moves the operation to Failed and returns err for chaining
func (o *Operation) fail(err error) error {
	if o.State == StateFailed || o.State == StateCommitted {
		return err
	}
	if terr := o.advance(StateFailed); terr != nil {
		return terr
	}
	o.Err = err
	o.ErrKind = apperror.KindOf(err)
	return err
}

// Terminal reports whether the operation has finished
func (o *Operation) Terminal() bool {
	return o.State == StateCommitted || o.State == StateFailed
}
