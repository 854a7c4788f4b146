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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/graphle-recipe/pkg/errors"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateDefined, StateConfiguring, true},
		{StateDefined, StatePackaging, true},
		{StateDefined, StateBuilding, false},
		{StateDefined, StateFailed, false},
		{StateConfiguring, StateBuilding, true},
		{StateConfiguring, StateFailed, true},
		{StateBuilding, StateTesting, true},
		{StateBuilding, StatePackaging, false},
		{StateTesting, StatePackaging, true},
		{StateTesting, StateFailed, true},
		{StatePackaging, StateIdentified, true},
		{StatePackaging, StateFailed, true},
		{StateIdentified, StateDone, true},
		{StateIdentified, StateFailed, false},
		{StateFailed, StateConfiguring, false},
		{StateFailed, StateDefined, false},
		{StateDone, StateDefined, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestState_IsTerminal(t *testing.T) {
	assert.True(t, StateDone.IsTerminal())
	assert.True(t, StateFailed.IsTerminal())
	assert.False(t, StateDefined.IsTerminal())
	assert.False(t, StateIdentified.IsTerminal())
}

func TestMachine(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, StateDefined, m.Current())

	require.NoError(t, m.Transition(StatePackaging))
	err := m.Transition(StateDone)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
	assert.Equal(t, StatePackaging, m.Current())

	require.NoError(t, m.Transition(StateIdentified))
	assert.False(t, m.Fail())
	require.NoError(t, m.Transition(StateDone))

	assert.Equal(t, []State{StateDefined, StatePackaging, StateIdentified, StateDone}, m.Trace())
}
