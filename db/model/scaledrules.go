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

const (
	// TriggerTypeCPU cpu utilization trigger
	TriggerTypeCPU = "cpu"
	// TriggerTypeMemory memory utilization trigger
	TriggerTypeMemory = "memory"
	// TriggerTypeCron cron schedule trigger
	TriggerTypeCron = "cron"
)

const (
	// RuleApplied the rule has been applied to the runtime
	RuleApplied = "Y"
	// RuleNotApplied the rule is stored but not applied
	RuleNotApplied = "N"
)

//ScaledRules elastic scaling rule for one runtime service
type ScaledRules struct {
	Model
	RuleID          string `gorm:"column:rule_id;size:32;unique_index" json:"rule_id"`
	RuntimeID       string `gorm:"column:runtime_id;size:32;index" json:"runtime_id"`
	ServiceName     string `gorm:"column:service_name;size:64" json:"service_name"`
	IsApplied       string `gorm:"column:is_applied;size:1;default:'N'" json:"is_applied"`
	MinReplicaCount int    `gorm:"column:min_replica_count" json:"min_replica_count"`
	MaxReplicaCount int    `gorm:"column:max_replica_count" json:"max_replica_count"`
}

//TableName returns table name of ScaledRules
func (t *ScaledRules) TableName() string {
	return "scaled_rules"
}

//ScaledRuleTriggers one trigger belonging to a scaled rule.
// cpu/memory triggers fill metadata_type and value, cron triggers
// fill cron_start, cron_end, desired_replicas and timezone.
type ScaledRuleTriggers struct {
	Model
	RuleID          string `gorm:"column:rule_id;size:32;index" json:"rule_id"`
	TriggerType     string `gorm:"column:trigger_type;size:16" json:"trigger_type"`
	MetadataType    string `gorm:"column:metadata_type;size:32" json:"metadata_type"`
	Value           string `gorm:"column:value;size:32" json:"value"`
	CronStart       string `gorm:"column:cron_start;size:64" json:"cron_start"`
	CronEnd         string `gorm:"column:cron_end;size:64" json:"cron_end"`
	DesiredReplicas string `gorm:"column:desired_replicas;size:32" json:"desired_replicas"`
	Timezone        string `gorm:"column:timezone;size:64" json:"timezone"`
}

//TableName returns table name of ScaledRuleTriggers
func (t *ScaledRuleTriggers) TableName() string {
	return "scaled_rule_triggers"
}
