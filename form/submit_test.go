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

package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScaledConfig(t *testing.T) {
	f := NewTriggerForm()
	f.MinReplicaCount = "2"
	f.MaxReplicaCount = "10"
	addTrigger(t, f, map[Field]interface{}{FieldType: "cpu", FieldValue: 85})
	addTrigger(t, f, map[Field]interface{}{
		FieldType:            "cron",
		FieldStart:           "0 8 * * *",
		FieldEnd:             "0 20 * * *",
		FieldDesiredReplicas: 3,
	})

	config, errs := f.BuildScaledConfig()
	require.Empty(t, errs)
	require.NotNil(t, config)

	assert.Equal(t, 2, config.MinReplicaCount)
	assert.Equal(t, 10, config.MaxReplicaCount)
	require.Len(t, config.Triggers, 2)

	cpu := config.Triggers[0]
	assert.Equal(t, "cpu", cpu.Type)
	require.NotNil(t, cpu.Utilization)
	assert.Equal(t, "Utilization", cpu.Utilization.Type)
	assert.Equal(t, "85", cpu.Utilization.Value)
	assert.Nil(t, cpu.Cron)

	cron := config.Triggers[1]
	assert.Equal(t, "cron", cron.Type)
	require.NotNil(t, cron.Cron)
	assert.Equal(t, "0 8 * * *", cron.Cron.Start)
	assert.Equal(t, "3", cron.Cron.DesiredReplicas)
	assert.Equal(t, "Asia/Shanghai", cron.Cron.Timezone)
}

func TestBuildScaledConfigDropsUnsetRows(t *testing.T) {
	f := NewTriggerForm()
	f.MinReplicaCount = "1"
	f.MaxReplicaCount = "5"
	addTrigger(t, f, map[Field]interface{}{FieldType: "memory", FieldValue: "60"})

	// a just-added row whose type was never chosen
	_, err := f.BeginAdd()
	require.NoError(t, err)

	config, errs := f.BuildScaledConfig()
	require.Empty(t, errs)
	require.Len(t, config.Triggers, 1)
	assert.Equal(t, "memory", config.Triggers[0].Type)
}

func TestBuildScaledConfigExcludesStaleHiddenFields(t *testing.T) {
	f := NewTriggerForm()
	f.MinReplicaCount = "1"
	f.MaxReplicaCount = "5"

	e, err := f.BeginAdd()
	require.NoError(t, err)
	// the user first picks cpu, types a value, then switches to cron
	require.NoError(t, e.SetField(FieldType, "cpu"))
	require.NoError(t, e.SetField(FieldValue, "85"))
	require.NoError(t, e.SetField(FieldType, "cron"))
	require.NoError(t, e.SetField(FieldStart, "0 8 * * *"))
	require.NoError(t, e.SetField(FieldEnd, "0 20 * * *"))
	require.NoError(t, e.SetField(FieldDesiredReplicas, "3"))
	require.Empty(t, e.Confirm())

	config, errs := f.BuildScaledConfig()
	require.Empty(t, errs)
	require.Len(t, config.Triggers, 1)
	// the stale cpu value must not leak into the cron trigger
	assert.Nil(t, config.Triggers[0].Utilization)
	require.NotNil(t, config.Triggers[0].Cron)
}

func TestBuildScaledConfigReplicaBounds(t *testing.T) {
	f := NewTriggerForm()
	f.MinReplicaCount = "5"
	f.MaxReplicaCount = "2"

	_, errs := f.BuildScaledConfig()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "minReplicaCount")

	f.MinReplicaCount = "200"
	f.MaxReplicaCount = "10"
	_, errs = f.BuildScaledConfig()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "minReplicaCount")
}
