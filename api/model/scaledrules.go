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
	"fmt"
	"strconv"
)

//MetadataTypeUtilization subtype marker carried by cpu and memory triggers
const MetadataTypeUtilization = "Utilization"

//DefaultTimezone timezone a cron trigger gets when none is chosen
const DefaultTimezone = "Asia/Shanghai"

//UtilizationMetadata metadata of a cpu or memory trigger. Value is the
//target utilization percentage, string typed on the wire.
type UtilizationMetadata struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

//CronMetadata metadata of a cron trigger
type CronMetadata struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DesiredReplicas string `json:"desiredReplicas"`
	Timezone        string `json:"timezone"`
}

//Trigger one scaling condition. Exactly one metadata variant is set,
//matching Type: Utilization for cpu/memory, Cron for cron.
type Trigger struct {
	Type        string
	Utilization *UtilizationMetadata
	Cron        *CronMetadata
}

type triggerWire struct {
	Type     string          `json:"type"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

//MarshalJSON writes the active variant under the metadata key
func (t Trigger) MarshalJSON() ([]byte, error) {
	w := triggerWire{Type: t.Type}
	var meta interface{}
	switch t.Type {
	case "cpu", "memory":
		meta = t.Utilization
	case "cron":
		meta = t.Cron
	}
	if meta != nil {
		b, err := json.Marshal(meta)
		if err != nil {
			return nil, err
		}
		w.Metadata = b
	}
	return json.Marshal(w)
}

//UnmarshalJSON picks the metadata variant matching the trigger type
func (t *Trigger) UnmarshalJSON(data []byte) error {
	var w triggerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.Type = w.Type
	t.Utilization = nil
	t.Cron = nil
	if len(w.Metadata) == 0 {
		return nil
	}
	switch w.Type {
	case "cpu", "memory":
		t.Utilization = &UtilizationMetadata{}
		return json.Unmarshal(w.Metadata, t.Utilization)
	case "cron":
		t.Cron = &CronMetadata{}
		return json.Unmarshal(w.Metadata, t.Cron)
	}
	return nil
}

//Validate checks one trigger against its variant invariants
func (t *Trigger) Validate() error {
	switch t.Type {
	case "cpu", "memory":
		if t.Utilization == nil {
			return fmt.Errorf("%s trigger: utilization metadata is required", t.Type)
		}
		if t.Utilization.Type != MetadataTypeUtilization {
			return fmt.Errorf("%s trigger: unsupported metadata type %q", t.Type, t.Utilization.Type)
		}
		v, err := strconv.ParseFloat(t.Utilization.Value, 64)
		if err != nil {
			return fmt.Errorf("%s trigger: value %q is not numeric", t.Type, t.Utilization.Value)
		}
		if v <= 0 || v >= 100 {
			return fmt.Errorf("%s trigger: value must be between 0 and 100", t.Type)
		}
	case "cron":
		if t.Cron == nil {
			return fmt.Errorf("cron trigger: cron metadata is required")
		}
		if t.Cron.Start == "" || t.Cron.End == "" {
			return fmt.Errorf("cron trigger: start and end are required")
		}
		if _, err := strconv.Atoi(t.Cron.DesiredReplicas); err != nil {
			return fmt.Errorf("cron trigger: desiredReplicas %q is not an integer", t.Cron.DesiredReplicas)
		}
	default:
		return fmt.Errorf("unsupported trigger type %q", t.Type)
	}
	return nil
}

//ScaledConfig the full autoscaling policy of one runtime service
type ScaledConfig struct {
	MinReplicaCount int       `json:"minReplicaCount"`
	MaxReplicaCount int       `json:"maxReplicaCount"`
	Triggers        []Trigger `json:"triggers"`
}

//Validate checks replica bounds, trigger count and per-type exclusivity.
//The min<=max check is done here even though the console also checks it.
func (s *ScaledConfig) Validate() error {
	if s.MinReplicaCount < 0 || s.MinReplicaCount > 100 {
		return fmt.Errorf("minReplicaCount must be between 0 and 100")
	}
	if s.MaxReplicaCount < 1 || s.MaxReplicaCount > 100 {
		return fmt.Errorf("maxReplicaCount must be between 1 and 100")
	}
	if s.MinReplicaCount > s.MaxReplicaCount {
		return fmt.Errorf("minReplicaCount must be no greater than maxReplicaCount")
	}
	if len(s.Triggers) > 3 {
		return fmt.Errorf("at most 3 triggers are allowed")
	}
	seen := make(map[string]bool)
	for i := range s.Triggers {
		t := &s.Triggers[i]
		if seen[t.Type] {
			return fmt.Errorf("duplicate %s trigger", t.Type)
		}
		seen[t.Type] = true
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

//Rule a persisted scaled config with its apply status
type Rule struct {
	RuleID       string       `json:"ruleId"`
	ServiceName  string       `json:"serviceName"`
	IsApplied    string       `json:"isApplied"`
	ScaledConfig ScaledConfig `json:"scaledConfig"`
}

//ServiceScaledConfig create request item
type ServiceScaledConfig struct {
	ServiceName  string       `json:"serviceName" validate:"required"`
	ScaledConfig ScaledConfig `json:"scaledConfig"`
}

//CreateScaledRulesReq request body of POST /scaled-rules
type CreateScaledRulesReq struct {
	Services []ServiceScaledConfig `json:"services" validate:"required,min=1,dive"`
}

//RuleScaledConfig update request item
type RuleScaledConfig struct {
	RuleID       string       `json:"ruleId" validate:"required"`
	ScaledConfig ScaledConfig `json:"scaledConfig"`
}

//UpdateScaledRulesReq request body of PUT /scaled-rules
type UpdateScaledRulesReq struct {
	Rules []RuleScaledConfig `json:"rules" validate:"required,min=1,dive"`
}

//RuleAction apply or cancel one rule
type RuleAction struct {
	RuleID string `json:"ruleId" validate:"required"`
	Action string `json:"action" validate:"required,oneof=apply cancel"`
}

//RuleActionsReq request body of POST /scaled-rules/actions
type RuleActionsReq struct {
	Actions []RuleAction `json:"actions" validate:"required,min=1,dive"`
}
