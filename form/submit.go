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
	"net/url"
	"strconv"

	apimodel "github.com/goodrain/rainbond-scaler/api/model"
)

//BuildScaledConfig validates the whole form and assembles the config
//submitted upstream. Rows whose type is still unset are dropped, and a
//trigger carries only the fields its type keeps visible or pushed, so
//values hidden by an earlier type switch never leak into the payload.
func (f *TriggerForm) BuildScaledConfig() (*apimodel.ScaledConfig, url.Values) {
	errs := f.validateReplicaBounds()
	for i, row := range f.rows {
		if row.Type() == "" {
			continue
		}
		rowErrs := f.validateRow(i)
		for field, msgs := range rowErrs {
			errs[field] = append(errs[field], msgs...)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	min, _ := strconv.Atoi(f.MinReplicaCount)
	max, _ := strconv.Atoi(f.MaxReplicaCount)
	config := &apimodel.ScaledConfig{
		MinReplicaCount: min,
		MaxReplicaCount: max,
	}
	for _, row := range f.rows {
		switch row.Type() {
		case "cpu", "memory":
			config.Triggers = append(config.Triggers, apimodel.Trigger{
				Type: row.Type(),
				Utilization: &apimodel.UtilizationMetadata{
					Type:  row.Field(FieldMetadataType).Value,
					Value: row.Field(FieldValue).Value,
				},
			})
		case "cron":
			config.Triggers = append(config.Triggers, apimodel.Trigger{
				Type: row.Type(),
				Cron: &apimodel.CronMetadata{
					Start:           row.Field(FieldStart).Value,
					End:             row.Field(FieldEnd).Value,
					DesiredReplicas: row.Field(FieldDesiredReplicas).Value,
					Timezone:        row.Field(FieldTimezone).Value,
				},
			})
		}
	}
	return config, nil
}
