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

package controller

import (
	"net/http"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/goodrain/rainbond-scaler/api/handler"
	"github.com/goodrain/rainbond-scaler/api/model"
	ctxutil "github.com/goodrain/rainbond-scaler/api/util/ctx"
	"github.com/goodrain/rainbond-scaler/db/errors"
	httputil "github.com/goodrain/rainbond-scaler/util/http"
)

//ScalerStruct api controller of scaled rules
type ScalerStruct struct{}

// ScaledRules -
func (t *ScalerStruct) ScaledRules(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		t.listScaledRules(w, r)
	case "POST":
		t.createScaledRules(w, r)
	case "PUT":
		t.updateScaledRules(w, r)
	}
}

func (t *ScalerStruct) listScaledRules(w http.ResponseWriter, r *http.Request) {
	runtimeID := r.Context().Value(ctxutil.ContextKey("runtime_id")).(string)
	serviceNames := r.URL.Query()["service"]

	rules, err := handler.GetScaledRulesManager().ListScaledRules(runtimeID, serviceNames)
	if err != nil {
		logrus.Errorf("list scaled rules: %v", err)
		httputil.ReturnError(r, w, 500, err.Error())
		return
	}

	httputil.ReturnList(r, w, rules)
}

func (t *ScalerStruct) createScaledRules(w http.ResponseWriter, r *http.Request) {
	var req model.CreateScaledRulesReq
	ok := httputil.ValidatorRequestStructAndErrorResponse(r, w, &req, nil)
	if !ok {
		return
	}
	for _, service := range req.Services {
		if err := service.ScaledConfig.Validate(); err != nil {
			httputil.ReturnError(r, w, 400, err.Error())
			return
		}
	}

	runtimeID := r.Context().Value(ctxutil.ContextKey("runtime_id")).(string)
	rules, err := handler.GetScaledRulesManager().CreateScaledRules(runtimeID, req.Services)
	if err != nil {
		if err == errors.ErrRecordAlreadyExist {
			httputil.ReturnError(r, w, 400, err.Error())
			return
		}
		logrus.Errorf("create scaled rules: %v", err)
		httputil.ReturnError(r, w, 500, err.Error())
		return
	}

	httputil.ReturnList(r, w, rules)
}

func (t *ScalerStruct) updateScaledRules(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateScaledRulesReq
	ok := httputil.ValidatorRequestStructAndErrorResponse(r, w, &req, nil)
	if !ok {
		return
	}
	for _, rule := range req.Rules {
		if err := rule.ScaledConfig.Validate(); err != nil {
			httputil.ReturnError(r, w, 400, err.Error())
			return
		}
	}

	runtimeID := r.Context().Value(ctxutil.ContextKey("runtime_id")).(string)
	rules, err := handler.GetScaledRulesManager().UpdateScaledRules(runtimeID, req.Rules)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httputil.ReturnError(r, w, 404, err.Error())
			return
		}
		logrus.Errorf("update scaled rules: %v", err)
		httputil.ReturnError(r, w, 500, err.Error())
		return
	}

	httputil.ReturnList(r, w, rules)
}

// ScaledRuleActions -
func (t *ScalerStruct) ScaledRuleActions(w http.ResponseWriter, r *http.Request) {
	var req model.RuleActionsReq
	ok := httputil.ValidatorRequestStructAndErrorResponse(r, w, &req, nil)
	if !ok {
		return
	}

	runtimeID := r.Context().Value(ctxutil.ContextKey("runtime_id")).(string)
	if err := handler.GetScaledRulesManager().ApplyOrCancelRules(runtimeID, req.Actions); err != nil {
		if err == gorm.ErrRecordNotFound {
			httputil.ReturnError(r, w, 404, err.Error())
			return
		}
		logrus.Errorf("apply or cancel scaled rules: %v", err)
		httputil.ReturnError(r, w, 500, err.Error())
		return
	}

	httputil.ReturnSuccess(r, w, nil)
}
