// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lifecycle

import (
	"fmt"
	"log/slog"

	"github.com/NVIDIA/graphle-recipe/pkg/errors"
)

// State is a stage of a recipe run.
type State string

const (
	StateDefined     State = "Defined"
	StateConfiguring State = "Configuring"
	StateBuilding    State = "Building"
	StateTesting     State = "Testing"
	StatePackaging   State = "Packaging"
	StateIdentified  State = "Identified"
	StateDone        State = "Done"
	StateFailed      State = "Failed"
)

// String returns the string representation of the State.
func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether no transition leaves s.
func (s State) IsTerminal() bool {
	return len(transitions[s]) == 0
}

var transitions = map[State][]State{
	StateDefined:     {StateConfiguring, StatePackaging},
	StateConfiguring: {StateBuilding, StateFailed},
	StateBuilding:    {StateTesting, StateFailed},
	StateTesting:     {StatePackaging, StateFailed},
	StatePackaging:   {StateIdentified, StateFailed},
	StateIdentified:  {StateDone},
}

// CanTransition reports whether a run may move from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Machine tracks the state of a single run and the path it took.
type Machine struct {
	current State
	trace   []State
}

// NewMachine returns a machine in StateDefined.
func NewMachine() *Machine {
	return &Machine{current: StateDefined, trace: []State{StateDefined}}
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// Trace returns every state visited, in order.
func (m *Machine) Trace() []State {
	return append([]State(nil), m.trace...)
}

// Transition moves the machine to the next state.
func (m *Machine) Transition(to State) error {
	if !CanTransition(m.current, to) {
		return errors.NewWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("illegal state transition %s -> %s", m.current, to),
			map[string]any{"from": m.current.String(), "to": to.String()})
	}
	slog.Debug("state transition", "from", m.current, "to", to)
	m.current = to
	m.trace = append(m.trace, to)
	return nil
}

// Fail moves the machine to StateFailed when the current state allows it.
// It reports whether the transition happened.
func (m *Machine) Fail() bool {
	return m.Transition(StateFailed) == nil
}
