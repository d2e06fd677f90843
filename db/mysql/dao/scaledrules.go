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

package dao

import (
	"github.com/jinzhu/gorm"

	"github.com/goodrain/rainbond-scaler/db/errors"
	"github.com/goodrain/rainbond-scaler/db/model"
)

// ScaledRulesDaoImpl -
type ScaledRulesDaoImpl struct {
	DB *gorm.DB
}

// AddModel -
func (t *ScaledRulesDaoImpl) AddModel(mo model.Interface) error {
	rule := mo.(*model.ScaledRules)
	var old model.ScaledRules
	if ok := t.DB.Where("rule_id = ?", rule.RuleID).Find(&old).RecordNotFound(); ok {
		if err := t.DB.Create(rule).Error; err != nil {
			return err
		}
	} else {
		return errors.ErrRecordAlreadyExist
	}
	return nil
}

// UpdateModel -
func (t *ScaledRulesDaoImpl) UpdateModel(mo model.Interface) error {
	rule := mo.(*model.ScaledRules)
	if err := t.DB.Save(rule).Error; err != nil {
		return err
	}
	return nil
}

// GetByRuleID -
func (t *ScaledRulesDaoImpl) GetByRuleID(ruleID string) (*model.ScaledRules, error) {
	var rule model.ScaledRules
	if err := t.DB.Where("rule_id=?", ruleID).Find(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// ListByRuntimeID -
func (t *ScaledRulesDaoImpl) ListByRuntimeID(runtimeID string) ([]*model.ScaledRules, error) {
	var rules []*model.ScaledRules
	if err := t.DB.Where("runtime_id=?", runtimeID).Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// ListByServiceNames -
func (t *ScaledRulesDaoImpl) ListByServiceNames(runtimeID string, serviceNames []string) ([]*model.ScaledRules, error) {
	var rules []*model.ScaledRules
	if err := t.DB.Where("runtime_id=? and service_name in (?)", runtimeID, serviceNames).Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// GetByServiceName -
func (t *ScaledRulesDaoImpl) GetByServiceName(runtimeID, serviceName string) (*model.ScaledRules, error) {
	var rule model.ScaledRules
	if err := t.DB.Where("runtime_id=? and service_name=?", runtimeID, serviceName).Find(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteByRuleID -
func (t *ScaledRulesDaoImpl) DeleteByRuleID(ruleID string) error {
	return t.DB.Where("rule_id=?", ruleID).Delete(&model.ScaledRules{}).Error
}

// ScaledRuleTriggersDaoImpl -
type ScaledRuleTriggersDaoImpl struct {
	DB *gorm.DB
}

// AddModel -
func (t *ScaledRuleTriggersDaoImpl) AddModel(mo model.Interface) error {
	trigger := mo.(*model.ScaledRuleTriggers)
	var old model.ScaledRuleTriggers
	if ok := t.DB.Where("rule_id=? and trigger_type=?", trigger.RuleID, trigger.TriggerType).Find(&old).RecordNotFound(); ok {
		if err := t.DB.Create(trigger).Error; err != nil {
			return err
		}
	} else {
		return errors.ErrRecordAlreadyExist
	}
	return nil
}

// UpdateModel -
func (t *ScaledRuleTriggersDaoImpl) UpdateModel(mo model.Interface) error {
	trigger := mo.(*model.ScaledRuleTriggers)
	if err := t.DB.Save(trigger).Error; err != nil {
		return err
	}
	return nil
}

// ListByRuleID -
func (t *ScaledRuleTriggersDaoImpl) ListByRuleID(ruleID string) ([]*model.ScaledRuleTriggers, error) {
	var triggers []*model.ScaledRuleTriggers
	if err := t.DB.Where("rule_id=?", ruleID).Find(&triggers).Error; err != nil {
		return nil, err
	}
	return triggers, nil
}

// ListByRuleIDs -
func (t *ScaledRuleTriggersDaoImpl) ListByRuleIDs(ruleIDs []string) ([]*model.ScaledRuleTriggers, error) {
	var triggers []*model.ScaledRuleTriggers
	if err := t.DB.Where("rule_id in (?)", ruleIDs).Find(&triggers).Error; err != nil {
		return nil, err
	}
	return triggers, nil
}

// DeleteByRuleID -
func (t *ScaledRuleTriggersDaoImpl) DeleteByRuleID(ruleID string) error {
	return t.DB.Where("rule_id=?", ruleID).Delete(&model.ScaledRuleTriggers{}).Error
}
