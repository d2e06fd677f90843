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

// Package form holds the drawer side state of the elastic scaling
// configuration: a trigger row arena whose field visibility follows the
// selected trigger type, a modal editor with snapshot based cancel, and
// field level validation producing one message per invalid field.
package form

import (
	"fmt"
	"strconv"
)

//Field identifies one sub field of a trigger row
type Field string

const (
	// FieldType trigger type selector
	FieldType Field = "type"
	// FieldValue target utilization percentage, cpu/memory only
	FieldValue Field = "value"
	// FieldStart cron expression starting the scale window
	FieldStart Field = "start"
	// FieldEnd cron expression ending the scale window
	FieldEnd Field = "end"
	// FieldDesiredReplicas replica count inside the cron window
	FieldDesiredReplicas Field = "desiredReplicas"
	// FieldMetadataType internal subtype marker, "Utilization" for cpu/memory
	FieldMetadataType Field = "metadataType"
	// FieldTimezone timezone of the cron expressions
	FieldTimezone Field = "timezone"
)

var triggerFields = []Field{
	FieldType, FieldValue, FieldStart, FieldEnd,
	FieldDesiredReplicas, FieldMetadataType, FieldTimezone,
}

// TriggerTypes all selectable trigger types, also the trigger limit
var TriggerTypes = []string{"cpu", "memory", "cron"}

//FieldState current state of one field as the widget layer renders it
type FieldState struct {
	Value    string
	Visible  bool
	Required bool
}

//TriggerRow field states of one trigger
type TriggerRow struct {
	fields map[Field]*FieldState
}

func newTriggerRow() *TriggerRow {
	r := &TriggerRow{fields: make(map[Field]*FieldState, len(triggerFields))}
	for _, f := range triggerFields {
		r.fields[f] = &FieldState{}
	}
	r.fields[FieldType].Visible = true
	r.fields[FieldType].Required = true
	return r
}

//Field returns a copy of the state of f
func (r *TriggerRow) Field(f Field) FieldState {
	if s, ok := r.fields[f]; ok {
		return *s
	}
	return FieldState{}
}

//Type returns the currently selected trigger type, empty when unset
func (r *TriggerRow) Type() string {
	return r.fields[FieldType].Value
}

func (r *TriggerRow) clone() *TriggerRow {
	c := &TriggerRow{fields: make(map[Field]*FieldState, len(r.fields))}
	for f, s := range r.fields {
		cs := *s
		c.fields[f] = &cs
	}
	return c
}

//TriggerForm in-memory form state of one drawer-open lifecycle. It is
//freshly constructed each time the drawer becomes visible and thrown
//away on close.
type TriggerForm struct {
	MinReplicaCount string
	MaxReplicaCount string

	rows []*TriggerRow
}

//NewTriggerForm creates an empty form
func NewTriggerForm() *TriggerForm {
	return &TriggerForm{}
}

//Len returns the number of trigger rows
func (f *TriggerForm) Len() int {
	return len(f.rows)
}

//Row returns the trigger row at index i
func (f *TriggerForm) Row(i int) (*TriggerRow, error) {
	if i < 0 || i >= len(f.rows) {
		return nil, fmt.Errorf("trigger index %d out of range", i)
	}
	return f.rows[i], nil
}

//SetField writes a field of trigger row i. A change of the type field
//re-synchronizes the visibility of the sibling fields. Numeric writes
//to value and desiredReplicas are stored as their string representation.
func (f *TriggerForm) SetField(i int, field Field, value interface{}) error {
	row, err := f.Row(i)
	if err != nil {
		return err
	}
	state, ok := row.fields[field]
	if !ok {
		return fmt.Errorf("unknown trigger field %q", field)
	}
	state.Value = normalizeFieldValue(field, value)
	if field == FieldType {
		applyVisibility(row, ComputeVisibility(state.Value))
	}
	return nil
}

// normalizeFieldValue coerces numeric writes to value/desiredReplicas
// into strings, the shape the backend schema expects. Anything else
// passes through unchanged.
func normalizeFieldValue(field Field, value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		if field == FieldValue || field == FieldDesiredReplicas {
			return strconv.Itoa(v)
		}
		return fmt.Sprintf("%v", v)
	case int64:
		if field == FieldValue || field == FieldDesiredReplicas {
			return strconv.FormatInt(v, 10)
		}
		return fmt.Sprintf("%v", v)
	case float64:
		if field == FieldValue || field == FieldDesiredReplicas {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

//AvailableTypes returns the type options offered to trigger row i: all
//types not held by another row, plus the row's own current selection.
func (f *TriggerForm) AvailableTypes(i int) []string {
	used := make(map[string]bool)
	for j, row := range f.rows {
		if j == i {
			continue
		}
		if t := row.Type(); t != "" {
			used[t] = true
		}
	}
	var options []string
	for _, t := range TriggerTypes {
		if !used[t] {
			options = append(options, t)
		}
	}
	return options
}

//CanAddTrigger reports whether another trigger may be added. The add
//action is disabled once one trigger of each type exists.
func (f *TriggerForm) CanAddTrigger() bool {
	return len(f.rows) < len(TriggerTypes)
}
