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

package version2

import (
	"github.com/go-chi/chi"

	"github.com/goodrain/rainbond-scaler/api/controller"
	"github.com/goodrain/rainbond-scaler/api/middleware"
)

// V2 v2
type V2 struct {
}

// Routes routes
func (v2 *V2) Routes() chi.Router {
	r := chi.NewRouter()
	r.Mount("/runtimes/{runtime_id}", v2.runtimeRouter())
	return r
}

func (v2 *V2) runtimeRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.InitRuntime)

	// elastic scaling rules
	r.Get("/scaled-rules", controller.GetManager().ScaledRules)
	r.Post("/scaled-rules", controller.GetManager().ScaledRules)
	r.Put("/scaled-rules", controller.GetManager().ScaledRules)
	r.Post("/scaled-rules/actions", controller.GetManager().ScaledRuleActions)

	return r
}
