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
	apimodel "github.com/goodrain/rainbond-scaler/api/model"
	"github.com/goodrain/rainbond-scaler/db"
)

//ScaledRulesHandler business logic of elastic scaling rule management
type ScaledRulesHandler interface {
	ListScaledRules(runtimeID string, serviceNames []string) ([]*apimodel.Rule, error)
	CreateScaledRules(runtimeID string, services []apimodel.ServiceScaledConfig) ([]*apimodel.Rule, error)
	UpdateScaledRules(runtimeID string, rules []apimodel.RuleScaledConfig) ([]*apimodel.Rule, error)
	ApplyOrCancelRules(runtimeID string, actions []apimodel.RuleAction) error
}

var defaultScaledRulesHandler ScaledRulesHandler

//InitHandle create all handlers
func InitHandle(dbmanager db.Manager) error {
	defaultScaledRulesHandler = CreateScaledRulesManager(dbmanager)
	return nil
}

//GetScaledRulesManager get scaled rules manager
func GetScaledRulesManager() ScaledRulesHandler {
	return defaultScaledRulesHandler
}
