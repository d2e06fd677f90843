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
	"github.com/goodrain/rainbond-scaler/db/model"
)

//Dao base dao interface
type Dao interface {
	AddModel(model.Interface) error
	UpdateModel(model.Interface) error
}

//ScaledRulesDao scaled rules dao
type ScaledRulesDao interface {
	Dao
	GetByRuleID(ruleID string) (*model.ScaledRules, error)
	ListByRuntimeID(runtimeID string) ([]*model.ScaledRules, error)
	ListByServiceNames(runtimeID string, serviceNames []string) ([]*model.ScaledRules, error)
	GetByServiceName(runtimeID, serviceName string) (*model.ScaledRules, error)
	DeleteByRuleID(ruleID string) error
}

//ScaledRuleTriggersDao scaled rule triggers dao
type ScaledRuleTriggersDao interface {
	Dao
	ListByRuleID(ruleID string) ([]*model.ScaledRuleTriggers, error)
	ListByRuleIDs(ruleIDs []string) ([]*model.ScaledRuleTriggers, error)
	DeleteByRuleID(ruleID string) error
}
