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

// addTrigger is the add+confirm protocol in one step
func addTrigger(t *testing.T, f *TriggerForm, fields map[Field]interface{}) {
	t.Helper()
	e, err := f.BeginAdd()
	require.NoError(t, err)
	for field, value := range fields {
		require.NoError(t, e.SetField(field, value))
	}
	require.Empty(t, e.Confirm())
}

func TestAddCancelRemovesRow(t *testing.T) {
	f := NewTriggerForm()
	e, err := f.BeginAdd()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Len())

	e.Cancel()
	assert.Equal(t, 0, f.Len())
}

func TestEditCancelRestoresSnapshot(t *testing.T) {
	f := NewTriggerForm()
	addTrigger(t, f, map[Field]interface{}{FieldType: "cpu", FieldValue: "80"})

	e, err := f.BeginEdit(0)
	require.NoError(t, err)
	require.NoError(t, e.SetField(FieldValue, "95"))
	row, err := f.Row(0)
	require.NoError(t, err)
	// the shared form state already holds the draft
	assert.Equal(t, "95", row.Field(FieldValue).Value)

	e.Cancel()
	row, err = f.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "80", row.Field(FieldValue).Value)
}

func TestConfirmKeepsModalOpenOnValidationFailure(t *testing.T) {
	f := NewTriggerForm()
	e, err := f.BeginAdd()
	require.NoError(t, err)
	require.NoError(t, e.SetField(FieldType, "cpu"))
	require.NoError(t, e.SetField(FieldValue, "120"))

	errs := e.Confirm()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "triggers.0.metadata.value")

	// nothing was cleared, the session is still editable
	row, err := f.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "120", row.Field(FieldValue).Value)

	require.NoError(t, e.SetField(FieldValue, "85"))
	assert.Empty(t, e.Confirm())
}

func TestConfirmValidatesCronFields(t *testing.T) {
	f := NewTriggerForm()
	e, err := f.BeginAdd()
	require.NoError(t, err)
	require.NoError(t, e.SetField(FieldType, "cron"))
	require.NoError(t, e.SetField(FieldStart, "not a cron"))

	errs := e.Confirm()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "triggers.0.metadata.start")
	assert.Contains(t, errs, "triggers.0.metadata.end")
	assert.Contains(t, errs, "triggers.0.metadata.desiredReplicas")

	require.NoError(t, e.SetField(FieldStart, "0 8 * * *"))
	require.NoError(t, e.SetField(FieldEnd, "0 20 * * *"))
	require.NoError(t, e.SetField(FieldDesiredReplicas, 3))
	assert.Empty(t, e.Confirm())
}

func TestAvailableTypesExcludeChosenOnes(t *testing.T) {
	f := NewTriggerForm()
	addTrigger(t, f, map[Field]interface{}{FieldType: "cpu", FieldValue: "80"})
	addTrigger(t, f, map[Field]interface{}{FieldType: "memory", FieldValue: "70"})

	e, err := f.BeginAdd()
	require.NoError(t, err)
	assert.Equal(t, []string{"cron"}, e.AvailableTypes())
	e.Cancel()

	// a row editing itself still sees its own selection
	edit, err := f.BeginEdit(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"cpu", "cron"}, edit.AvailableTypes())
	edit.Cancel()
}

func TestFourthTriggerIsRejected(t *testing.T) {
	f := NewTriggerForm()
	addTrigger(t, f, map[Field]interface{}{FieldType: "cpu", FieldValue: "80"})
	addTrigger(t, f, map[Field]interface{}{FieldType: "memory", FieldValue: "70"})
	addTrigger(t, f, map[Field]interface{}{
		FieldType:            "cron",
		FieldStart:           "0 8 * * *",
		FieldEnd:             "0 20 * * *",
		FieldDesiredReplicas: "3",
	})

	assert.False(t, f.CanAddTrigger())
	_, err := f.BeginAdd()
	assert.Equal(t, ErrTriggerLimit, err)
}
