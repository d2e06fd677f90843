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

// Scalerctl elastic scaling rule command line tool
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	cmds "github.com/goodrain/rainbond-scaler/scalerctl/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "scalerctl"
	app.Usage = "manage the elastic scaling rules of runtime services"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "endpoint,e",
			Value: "http://127.0.0.1:8888",
			Usage: "the scaler api endpoint",
		},
	}
	app.Commands = []cli.Command{
		cmds.NewCmdRule(),
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
