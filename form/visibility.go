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
	apimodel "github.com/goodrain/rainbond-scaler/api/model"
)

//FieldDecision visibility decision for one field. When Push is set the
//field also receives Value, the hidden-but-present case.
type FieldDecision struct {
	Visible  bool
	Required bool
	Push     bool
	Value    string
}

//FieldVisibilityMap decisions per field. Fields absent from the map are
//left untouched.
type FieldVisibilityMap map[Field]FieldDecision

//ComputeVisibility returns the field states a trigger row must take
//after its type changed to triggerType. Replaying the same type yields
//the same map, so applying it is idempotent.
func ComputeVisibility(triggerType string) FieldVisibilityMap {
	switch triggerType {
	case "cpu", "memory":
		return FieldVisibilityMap{
			FieldValue:           {Visible: true, Required: true},
			FieldStart:           {},
			FieldEnd:             {},
			FieldDesiredReplicas: {},
			FieldMetadataType:    {Push: true, Value: apimodel.MetadataTypeUtilization},
			FieldTimezone:        {},
		}
	case "cron":
		return FieldVisibilityMap{
			FieldValue:           {},
			FieldStart:           {Visible: true, Required: true},
			FieldEnd:             {Visible: true, Required: true},
			FieldDesiredReplicas: {Visible: true, Required: true},
			FieldMetadataType:    {},
			FieldTimezone:        {Push: true, Value: apimodel.DefaultTimezone},
		}
	default:
		// unset: hide the conditional fields, clear nothing
		return FieldVisibilityMap{
			FieldValue:           {},
			FieldStart:           {},
			FieldEnd:             {},
			FieldDesiredReplicas: {},
		}
	}
}

func applyVisibility(row *TriggerRow, decisions FieldVisibilityMap) {
	for field, d := range decisions {
		state := row.fields[field]
		state.Visible = d.Visible
		state.Required = d.Required
		if d.Push {
			state.Value = d.Value
		}
	}
}
