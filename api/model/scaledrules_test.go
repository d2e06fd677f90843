// RAINBOND, Application Management Platform
// Copyright (C) 2021 Goodrain Co., Ltd.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version. For any non-GPL usage of Rainbond,
// one or multiple Commercial Licenses authorized by Goodrain Co., Ltd.
// must be obtained first.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerJSONDiscriminatesOnType(t *testing.T) {
	raw := `{"type":"cpu","metadata":{"type":"Utilization","value":"85"}}`
	var trigger Trigger
	require.NoError(t, json.Unmarshal([]byte(raw), &trigger))
	require.NotNil(t, trigger.Utilization)
	assert.Nil(t, trigger.Cron)
	assert.Equal(t, "85", trigger.Utilization.Value)

	raw = `{"type":"cron","metadata":{"start":"0 8 * * *","end":"0 20 * * *","desiredReplicas":"3","timezone":"Asia/Shanghai"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &trigger))
	require.NotNil(t, trigger.Cron)
	assert.Nil(t, trigger.Utilization)
	assert.Equal(t, "0 8 * * *", trigger.Cron.Start)

	out, err := json.Marshal(trigger)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestTriggerValidate(t *testing.T) {
	tests := []struct {
		name    string
		trigger Trigger
		wantErr bool
	}{
		{
			name: "valid cpu",
			trigger: Trigger{
				Type:        "cpu",
				Utilization: &UtilizationMetadata{Type: "Utilization", Value: "85"},
			},
		},
		{
			name: "percentage out of range",
			trigger: Trigger{
				Type:        "memory",
				Utilization: &UtilizationMetadata{Type: "Utilization", Value: "100"},
			},
			wantErr: true,
		},
		{
			name: "value not numeric",
			trigger: Trigger{
				Type:        "cpu",
				Utilization: &UtilizationMetadata{Type: "Utilization", Value: "full"},
			},
			wantErr: true,
		},
		{
			name: "valid cron",
			trigger: Trigger{
				Type: "cron",
				Cron: &CronMetadata{Start: "0 8 * * *", End: "0 20 * * *", DesiredReplicas: "3"},
			},
		},
		{
			name: "cron without bounds",
			trigger: Trigger{
				Type: "cron",
				Cron: &CronMetadata{DesiredReplicas: "3"},
			},
			wantErr: true,
		},
		{
			name:    "unknown type",
			trigger: Trigger{Type: "disk"},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.trigger.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScaledConfigValidate(t *testing.T) {
	valid := ScaledConfig{
		MinReplicaCount: 1,
		MaxReplicaCount: 10,
		Triggers: []Trigger{
			{Type: "cpu", Utilization: &UtilizationMetadata{Type: "Utilization", Value: "85"}},
		},
	}
	assert.NoError(t, valid.Validate())

	minOverMax := valid
	minOverMax.MinReplicaCount = 20
	minOverMax.MaxReplicaCount = 10
	assert.Error(t, minOverMax.Validate())

	duplicated := valid
	duplicated.Triggers = []Trigger{
		{Type: "cpu", Utilization: &UtilizationMetadata{Type: "Utilization", Value: "85"}},
		{Type: "cpu", Utilization: &UtilizationMetadata{Type: "Utilization", Value: "60"}},
	}
	assert.Error(t, duplicated.Validate())
}
