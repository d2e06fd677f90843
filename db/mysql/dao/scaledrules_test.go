package dao

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	dberrors "github.com/goodrain/rainbond-scaler/db/errors"
	"github.com/goodrain/rainbond-scaler/db/model"
)

func TestScaledRulesDaoAddModel(t *testing.T) {
	tests := []struct {
		name     string
		mockFunc func(mock sqlmock.Sqlmock)
		wanterr  error
	}{
		{
			name: "rule exists,return err",
			mockFunc: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.
					NewRows([]string{"rule_id", "runtime_id", "service_name"}).
					AddRow("rule1", "runtime1", "web")
				mock.ExpectQuery("SELECT").WithArgs(sqlmock.AnyArg()).WillReturnRows(rows).WillReturnError(nil)
			},
			wanterr: dberrors.ErrRecordAlreadyExist,
		},
		{
			name: "rule not found,create success",
			mockFunc: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WithArgs(sqlmock.AnyArg()).WillReturnError(gorm.ErrRecordNotFound)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1)).WillReturnError(nil)
				mock.ExpectCommit()
			},
		},
	}

	for i := range tests {
		tc := tests[i]
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
			}
			defer db.Close()

			gdb, _ := gorm.Open("mysql", db)
			scaledRulesDao := &ScaledRulesDaoImpl{
				DB: gdb,
			}
			tc.mockFunc(mock)

			err = scaledRulesDao.AddModel(&model.ScaledRules{
				RuleID:          "rule1",
				RuntimeID:       "runtime1",
				ServiceName:     "web",
				IsApplied:       model.RuleNotApplied,
				MinReplicaCount: 1,
				MaxReplicaCount: 10,
			})
			if err != tc.wanterr {
				t.Errorf("Unexpected error = %v, wantErr %v", err, tc.wanterr)
				return
			}
		})
	}
}

func TestScaledRulesDaoGetByRuleID(t *testing.T) {
	tests := []struct {
		name     string
		ruleID   string
		mockFunc func(mock sqlmock.Sqlmock)
		wanterr  bool
	}{
		{
			name:   "get rule success",
			ruleID: "rule1",
			mockFunc: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.
					NewRows([]string{"rule_id", "runtime_id", "service_name", "is_applied"}).
					AddRow("rule1", "runtime1", "web", "N")
				mock.ExpectQuery("SELECT").WithArgs(sqlmock.AnyArg()).WillReturnRows(rows).WillReturnError(nil)
			},
			wanterr: false,
		},
		{
			name:   "rule not found",
			ruleID: "rule1",
			mockFunc: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WithArgs(sqlmock.AnyArg()).WillReturnError(gorm.ErrRecordNotFound)
			},
			wanterr: true,
		},
		{
			name:   "database error",
			ruleID: "rule1",
			mockFunc: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WithArgs(sqlmock.AnyArg()).WillReturnError(errors.New("database error"))
			},
			wanterr: true,
		},
	}

	for i := range tests {
		tc := tests[i]
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
			}
			defer db.Close()

			gdb, _ := gorm.Open("mysql", db)
			scaledRulesDao := &ScaledRulesDaoImpl{
				DB: gdb,
			}
			tc.mockFunc(mock)

			rule, err := scaledRulesDao.GetByRuleID(tc.ruleID)
			if (err != nil) != tc.wanterr {
				t.Errorf("Unexpected error = %v, wantErr %v", err, tc.wanterr)
				return
			}
			if rule != nil && rule.RuleID != tc.ruleID {
				t.Errorf("rule_id should equal %v, but got %v", tc.ruleID, rule.RuleID)
				return
			}
		})
	}
}

func TestScaledRuleTriggersDaoAddModel(t *testing.T) {
	tests := []struct {
		name     string
		mockFunc func(mock sqlmock.Sqlmock)
		wanterr  error
	}{
		{
			name: "trigger exists,return err",
			mockFunc: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.
					NewRows([]string{"rule_id", "trigger_type"}).
					AddRow("rule1", "cpu")
				mock.ExpectQuery("SELECT").WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).WillReturnRows(rows).WillReturnError(nil)
			},
			wanterr: dberrors.ErrRecordAlreadyExist,
		},
		{
			name: "trigger not found,create success",
			mockFunc: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).WillReturnError(gorm.ErrRecordNotFound)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1)).WillReturnError(nil)
				mock.ExpectCommit()
			},
		},
	}

	for i := range tests {
		tc := tests[i]
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
			}
			defer db.Close()

			gdb, _ := gorm.Open("mysql", db)
			triggersDao := &ScaledRuleTriggersDaoImpl{
				DB: gdb,
			}
			tc.mockFunc(mock)

			err = triggersDao.AddModel(&model.ScaledRuleTriggers{
				RuleID:       "rule1",
				TriggerType:  "cpu",
				MetadataType: "Utilization",
				Value:        "85",
			})
			if err != tc.wanterr {
				t.Errorf("Unexpected error = %v, wantErr %v", err, tc.wanterr)
				return
			}
		})
	}
}
