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

package handler

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	apimodel "github.com/goodrain/rainbond-scaler/api/model"
	"github.com/goodrain/rainbond-scaler/db"
	dberr "github.com/goodrain/rainbond-scaler/db/errors"
	dbmodel "github.com/goodrain/rainbond-scaler/db/model"
	"github.com/goodrain/rainbond-scaler/util"
	"github.com/goodrain/rainbond-scaler/worker/conversion"
)

//ScaledRulesAction scaled rules business logic
type ScaledRulesAction struct {
	dbmanager db.Manager
}

//CreateScaledRulesManager create scaled rules manager
func CreateScaledRulesManager(dbmanager db.Manager) *ScaledRulesAction {
	return &ScaledRulesAction{dbmanager: dbmanager}
}

//ListScaledRules list the rules of a runtime, optionally filtered by
//service names
func (s *ScaledRulesAction) ListScaledRules(runtimeID string, serviceNames []string) ([]*apimodel.Rule, error) {
	var rules []*dbmodel.ScaledRules
	var err error
	if len(serviceNames) > 0 {
		rules, err = s.dbmanager.ScaledRulesDao().ListByServiceNames(runtimeID, serviceNames)
	} else {
		rules, err = s.dbmanager.ScaledRulesDao().ListByRuntimeID(runtimeID)
	}
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}

	ruleIDs := make([]string, 0, len(rules))
	for _, rule := range rules {
		ruleIDs = append(ruleIDs, rule.RuleID)
	}
	triggers, err := s.dbmanager.ScaledRuleTriggersDao().ListByRuleIDs(ruleIDs)
	if err != nil {
		return nil, err
	}
	triggersByRule := make(map[string][]*dbmodel.ScaledRuleTriggers)
	for _, trigger := range triggers {
		triggersByRule[trigger.RuleID] = append(triggersByRule[trigger.RuleID], trigger)
	}

	result := make([]*apimodel.Rule, 0, len(rules))
	for _, rule := range rules {
		result = append(result, assembleRule(rule, triggersByRule[rule.RuleID]))
	}
	return result, nil
}

//CreateScaledRules create one rule per service in a single transaction
func (s *ScaledRulesAction) CreateScaledRules(runtimeID string, services []apimodel.ServiceScaledConfig) ([]*apimodel.Rule, error) {
	for _, service := range services {
		_, err := s.dbmanager.ScaledRulesDao().GetByServiceName(runtimeID, service.ServiceName)
		if err == nil {
			return nil, dberr.ErrRecordAlreadyExist
		}
		if !gorm.IsRecordNotFoundError(err) {
			return nil, err
		}
	}

	tx := s.dbmanager.Begin()
	defer s.dbmanager.EnsureEndTransactionFunc()(tx)

	var result []*apimodel.Rule
	for _, service := range services {
		rule := &dbmodel.ScaledRules{
			RuleID:          util.NewUUID(),
			RuntimeID:       runtimeID,
			ServiceName:     service.ServiceName,
			IsApplied:       dbmodel.RuleNotApplied,
			MinReplicaCount: service.ScaledConfig.MinReplicaCount,
			MaxReplicaCount: service.ScaledConfig.MaxReplicaCount,
		}
		if err := s.dbmanager.ScaledRulesDaoTransactions(tx).AddModel(rule); err != nil {
			tx.Rollback()
			return nil, err
		}
		triggers := triggerRows(rule.RuleID, &service.ScaledConfig)
		for _, trigger := range triggers {
			if err := s.dbmanager.ScaledRuleTriggersDaoTransactions(tx).AddModel(trigger); err != nil {
				tx.Rollback()
				return nil, err
			}
		}
		result = append(result, assembleRule(rule, triggers))
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	logrus.Infof("runtime %s: created %d scaled rules", runtimeID, len(result))
	return result, nil
}

//UpdateScaledRules update rules and replace their triggers wholesale
func (s *ScaledRulesAction) UpdateScaledRules(runtimeID string, rules []apimodel.RuleScaledConfig) ([]*apimodel.Rule, error) {
	tx := s.dbmanager.Begin()
	defer s.dbmanager.EnsureEndTransactionFunc()(tx)

	var result []*apimodel.Rule
	for _, item := range rules {
		rule, err := s.dbmanager.ScaledRulesDao().GetByRuleID(item.RuleID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if rule.RuntimeID != runtimeID {
			tx.Rollback()
			return nil, gorm.ErrRecordNotFound
		}

		rule.MinReplicaCount = item.ScaledConfig.MinReplicaCount
		rule.MaxReplicaCount = item.ScaledConfig.MaxReplicaCount
		if err := s.dbmanager.ScaledRulesDaoTransactions(tx).UpdateModel(rule); err != nil {
			tx.Rollback()
			return nil, err
		}

		if err := s.dbmanager.ScaledRuleTriggersDaoTransactions(tx).DeleteByRuleID(rule.RuleID); err != nil {
			tx.Rollback()
			return nil, err
		}
		triggers := triggerRows(rule.RuleID, &item.ScaledConfig)
		for _, trigger := range triggers {
			if err := s.dbmanager.ScaledRuleTriggersDaoTransactions(tx).AddModel(trigger); err != nil {
				tx.Rollback()
				return nil, err
			}
		}
		result = append(result, assembleRule(rule, triggers))
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	logrus.Infof("runtime %s: updated %d scaled rules", runtimeID, len(result))
	return result, nil
}

//ApplyOrCancelRules flip the applied flag of the listed rules. Apply
//refuses a rule whose triggers cannot materialize into an HPA.
func (s *ScaledRulesAction) ApplyOrCancelRules(runtimeID string, actions []apimodel.RuleAction) error {
	tx := s.dbmanager.Begin()
	defer s.dbmanager.EnsureEndTransactionFunc()(tx)

	for _, action := range actions {
		rule, err := s.dbmanager.ScaledRulesDao().GetByRuleID(action.RuleID)
		if err != nil {
			tx.Rollback()
			return err
		}
		if rule.RuntimeID != runtimeID {
			tx.Rollback()
			return gorm.ErrRecordNotFound
		}

		switch action.Action {
		case "apply":
			triggers, err := s.dbmanager.ScaledRuleTriggersDao().ListByRuleID(rule.RuleID)
			if err != nil {
				tx.Rollback()
				return err
			}
			if hpa := conversion.ScaledRuleHPA(rule, triggers); hpa == nil {
				tx.Rollback()
				return fmt.Errorf("rule %s has no trigger that can take effect", rule.RuleID)
			}
			rule.IsApplied = dbmodel.RuleApplied
		case "cancel":
			rule.IsApplied = dbmodel.RuleNotApplied
		}
		if err := s.dbmanager.ScaledRulesDaoTransactions(tx).UpdateModel(rule); err != nil {
			tx.Rollback()
			return err
		}
		logrus.Infof("rule id: %s; action %s done", rule.RuleID, action.Action)
	}
	return tx.Commit().Error
}

// triggerRows flattens the config triggers into db rows. A cron trigger
// without a timezone gets the default one.
func triggerRows(ruleID string, config *apimodel.ScaledConfig) []*dbmodel.ScaledRuleTriggers {
	var rows []*dbmodel.ScaledRuleTriggers
	for i := range config.Triggers {
		t := &config.Triggers[i]
		switch t.Type {
		case dbmodel.TriggerTypeCPU, dbmodel.TriggerTypeMemory:
			if t.Utilization == nil {
				continue
			}
			rows = append(rows, &dbmodel.ScaledRuleTriggers{
				RuleID:       ruleID,
				TriggerType:  t.Type,
				MetadataType: t.Utilization.Type,
				Value:        t.Utilization.Value,
			})
		case dbmodel.TriggerTypeCron:
			if t.Cron == nil {
				continue
			}
			timezone := t.Cron.Timezone
			if timezone == "" {
				timezone = apimodel.DefaultTimezone
			}
			rows = append(rows, &dbmodel.ScaledRuleTriggers{
				RuleID:          ruleID,
				TriggerType:     t.Type,
				CronStart:       t.Cron.Start,
				CronEnd:         t.Cron.End,
				DesiredReplicas: t.Cron.DesiredReplicas,
				Timezone:        timezone,
			})
		}
	}
	return rows
}

// assembleRule builds the api view of a rule row plus its trigger rows
func assembleRule(rule *dbmodel.ScaledRules, triggers []*dbmodel.ScaledRuleTriggers) *apimodel.Rule {
	result := &apimodel.Rule{
		RuleID:      rule.RuleID,
		ServiceName: rule.ServiceName,
		IsApplied:   rule.IsApplied,
		ScaledConfig: apimodel.ScaledConfig{
			MinReplicaCount: rule.MinReplicaCount,
			MaxReplicaCount: rule.MaxReplicaCount,
		},
	}
	for _, trigger := range triggers {
		switch trigger.TriggerType {
		case dbmodel.TriggerTypeCPU, dbmodel.TriggerTypeMemory:
			result.ScaledConfig.Triggers = append(result.ScaledConfig.Triggers, apimodel.Trigger{
				Type: trigger.TriggerType,
				Utilization: &apimodel.UtilizationMetadata{
					Type:  trigger.MetadataType,
					Value: trigger.Value,
				},
			})
		case dbmodel.TriggerTypeCron:
			result.ScaledConfig.Triggers = append(result.ScaledConfig.Triggers, apimodel.Trigger{
				Type: trigger.TriggerType,
				Cron: &apimodel.CronMetadata{
					Start:           trigger.CronStart,
					End:             trigger.CronEnd,
					DesiredReplicas: trigger.DesiredReplicas,
					Timezone:        trigger.Timezone,
				},
			})
		}
	}
	return result
}
