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

package mysql

import (
	"github.com/jinzhu/gorm"

	"github.com/goodrain/rainbond-scaler/db/dao"
	mysqldao "github.com/goodrain/rainbond-scaler/db/mysql/dao"
)

// ScaledRulesDao -
func (m *Manager) ScaledRulesDao() dao.ScaledRulesDao {
	return &mysqldao.ScaledRulesDaoImpl{
		DB: m.db,
	}
}

// ScaledRulesDaoTransactions -
func (m *Manager) ScaledRulesDaoTransactions(db *gorm.DB) dao.ScaledRulesDao {
	return &mysqldao.ScaledRulesDaoImpl{
		DB: db,
	}
}

// ScaledRuleTriggersDao -
func (m *Manager) ScaledRuleTriggersDao() dao.ScaledRuleTriggersDao {
	return &mysqldao.ScaledRuleTriggersDaoImpl{
		DB: m.db,
	}
}

// ScaledRuleTriggersDaoTransactions -
func (m *Manager) ScaledRuleTriggersDaoTransactions(db *gorm.DB) dao.ScaledRuleTriggersDao {
	return &mysqldao.ScaledRuleTriggersDaoImpl{
		DB: db,
	}
}
