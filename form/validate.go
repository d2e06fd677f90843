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
	"fmt"
	"net/url"
	"strconv"

	validator "github.com/goodrain/rainbond-scaler/util/govalidator"
)

// fieldPath mirrors the wire layout: the type selector sits on the
// trigger itself, everything else under its metadata record.
func fieldPath(i int, field Field) string {
	switch field {
	case FieldType:
		return fmt.Sprintf("triggers.%d.type", i)
	case FieldMetadataType:
		return fmt.Sprintf("triggers.%d.metadata.type", i)
	default:
		return fmt.Sprintf("triggers.%d.metadata.%s", i, field)
	}
}

// validateRow runs the field rules of trigger row i against its current
// type. Only the fields the active type keeps visible or pushed are
// validated.
func (f *TriggerForm) validateRow(i int) url.Values {
	row := f.rows[i]
	rules := []validator.FieldRules{
		{
			Field: fieldPath(i, FieldType),
			Value: row.Type(),
			Rule:  "required|in:cpu,memory,cron",
		},
	}
	switch row.Type() {
	case "cpu", "memory":
		rules = append(rules,
			validator.FieldRules{
				Field: fieldPath(i, FieldValue),
				Value: row.Field(FieldValue).Value,
				Rule:  "required|numeric|percentage",
			},
			validator.FieldRules{
				Field: fieldPath(i, FieldMetadataType),
				Value: row.Field(FieldMetadataType).Value,
				Rule:  "required|in:Utilization",
			},
		)
	case "cron":
		rules = append(rules,
			validator.FieldRules{
				Field: fieldPath(i, FieldStart),
				Value: row.Field(FieldStart).Value,
				Rule:  "required|cron",
			},
			validator.FieldRules{
				Field: fieldPath(i, FieldEnd),
				Value: row.Field(FieldEnd).Value,
				Rule:  "required|cron",
			},
			validator.FieldRules{
				Field: fieldPath(i, FieldDesiredReplicas),
				Value: row.Field(FieldDesiredReplicas).Value,
				Rule:  "required|numeric|min:1",
			},
			validator.FieldRules{
				Field: fieldPath(i, FieldTimezone),
				Value: row.Field(FieldTimezone).Value,
				Rule:  "timezone",
			},
		)
	}
	return validator.Validate(rules)
}

// validateReplicaBounds checks the replica count fields, including the
// cross-field min<=max check the backend is not trusted to do.
func (f *TriggerForm) validateReplicaBounds() url.Values {
	errs := validator.Validate([]validator.FieldRules{
		{
			Field: "minReplicaCount",
			Value: f.MinReplicaCount,
			Rule:  "required|numeric|min:0|max:100",
		},
		{
			Field: "maxReplicaCount",
			Value: f.MaxReplicaCount,
			Rule:  "required|numeric|min:1|max:100",
		},
	})
	if len(errs) > 0 {
		return errs
	}
	min, err1 := strconv.Atoi(f.MinReplicaCount)
	max, err2 := strconv.Atoi(f.MaxReplicaCount)
	if err1 == nil && err2 == nil && min > max {
		errs.Add("minReplicaCount", "The minReplicaCount field must be no greater than maxReplicaCount")
	}
	return errs
}
