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

// Scaler elastic scaling rule api binary
package main

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/goodrain/rainbond-scaler/api/api_routers/version2"
	"github.com/goodrain/rainbond-scaler/api/handler"
	"github.com/goodrain/rainbond-scaler/cmd/scaler/option"
	"github.com/goodrain/rainbond-scaler/db"
	dbconfig "github.com/goodrain/rainbond-scaler/db/config"
)

func main() {
	s := option.NewAPIServer()
	s.AddFlags(pflag.CommandLine)
	pflag.Parse()
	s.SetLog()

	if err := db.CreateManager(dbconfig.Config{
		DBType:              s.DBType,
		MysqlConnectionInfo: s.DBConnectionInfo,
		ShowSQL:             s.ShowSQL,
	}); err != nil {
		logrus.Fatalf("create db manager: %v", err)
	}
	defer db.CloseManager()

	if err := handler.InitHandle(db.GetManager()); err != nil {
		logrus.Fatalf("init handler: %v", err)
	}

	r := chi.NewRouter()
	r.Mount("/v2", (&version2.V2{}).Routes())

	logrus.Infof("scaler api server listen on %s", s.APIAddr)
	if err := http.ListenAndServe(s.APIAddr, r); err != nil {
		logrus.Fatalf("start scaler api server: %v", err)
	}
}
