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

package db

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/goodrain/rainbond-scaler/db/config"
	"github.com/goodrain/rainbond-scaler/db/dao"
	"github.com/goodrain/rainbond-scaler/db/mysql"
)

//Manager db manager
type Manager interface {
	CloseManager() error
	Begin() *gorm.DB
	EnsureEndTransactionFunc() func(tx *gorm.DB)

	ScaledRulesDao() dao.ScaledRulesDao
	ScaledRulesDaoTransactions(db *gorm.DB) dao.ScaledRulesDao
	ScaledRuleTriggersDao() dao.ScaledRuleTriggersDao
	ScaledRuleTriggersDaoTransactions(db *gorm.DB) dao.ScaledRuleTriggersDao
}

var defaultManager Manager

//CreateManager create db manager
func CreateManager(config config.Config) (err error) {
	if config.DBType != "mysql" {
		return fmt.Errorf("unsupported db type: %s", config.DBType)
	}
	defaultManager, err = mysql.CreateManager(config)
	return
}

//CloseManager close db manager
func CloseManager() error {
	if defaultManager == nil {
		return fmt.Errorf("default db manager not init")
	}
	return defaultManager.CloseManager()
}

//GetManager get db manager
func GetManager() Manager {
	return defaultManager
}

//SetTestManager sets the default manager for unit tests
func SetTestManager(m Manager) {
	defaultManager = m
}
