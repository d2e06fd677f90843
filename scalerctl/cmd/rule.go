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

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/urfave/cli"

	"github.com/goodrain/rainbond-scaler/api/model"
	"github.com/goodrain/rainbond-scaler/client"
)

//NewCmdRule scaled rule commands
func NewCmdRule() cli.Command {
	c := cli.Command{
		Name:  "rule",
		Usage: "about elastic scaling rules, scalerctl rule -h",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list the scaled rules of a runtime. For example <scalerctl rule list -r runtime1>",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "runtime,r",
						Usage: "Specify the runtime id",
					},
					cli.StringSliceFlag{
						Name:  "service,s",
						Usage: "only show the rules of these services",
					},
				},
				Action: listRules,
			},
			{
				Name:  "apply",
				Usage: "apply rules by rule id. For example <scalerctl rule apply -r runtime1 RULE_ID...>",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "runtime,r",
						Usage: "Specify the runtime id",
					},
				},
				Action: func(c *cli.Context) error {
					return actionRules(c, "apply")
				},
			},
			{
				Name:  "cancel",
				Usage: "cancel rules by rule id. For example <scalerctl rule cancel -r runtime1 RULE_ID...>",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "runtime,r",
						Usage: "Specify the runtime id",
					},
				},
				Action: func(c *cli.Context) error {
					return actionRules(c, "cancel")
				},
			},
		},
	}
	return c
}

func listRules(c *cli.Context) error {
	runtimeID := c.String("runtime")
	if runtimeID == "" {
		return cli.NewExitError("runtime id is required", 1)
	}

	rules, err := ruleService(c).FetchScaledRules(context.Background(), runtimeID, c.StringSlice("service"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	table := uitable.New()
	table.AddRow("RULE ID", "SERVICE", "APPLIED", "MIN", "MAX", "TRIGGERS")
	for _, rule := range rules {
		table.AddRow(rule.RuleID, rule.ServiceName, rule.IsApplied,
			rule.ScaledConfig.MinReplicaCount, rule.ScaledConfig.MaxReplicaCount,
			triggersSummary(rule.ScaledConfig.Triggers))
	}
	fmt.Println(table)
	return nil
}

func actionRules(c *cli.Context, action string) error {
	runtimeID := c.String("runtime")
	if runtimeID == "" {
		return cli.NewExitError("runtime id is required", 1)
	}
	if c.NArg() == 0 {
		return cli.NewExitError("at least one rule id is required", 1)
	}

	var actions []model.RuleAction
	for _, ruleID := range c.Args() {
		actions = append(actions, model.RuleAction{RuleID: ruleID, Action: action})
	}
	if err := ruleService(c).ApplyOrCancelRules(context.Background(), runtimeID, actions); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Printf("%s %d rules success\n", action, len(actions))
	return nil
}

func ruleService(c *cli.Context) *client.RuleService {
	return client.New(c.GlobalString("endpoint"))
}

func triggersSummary(triggers []model.Trigger) string {
	var parts []string
	for _, t := range triggers {
		switch {
		case t.Utilization != nil:
			parts = append(parts, fmt.Sprintf("%s=%s%%", t.Type, t.Utilization.Value))
		case t.Cron != nil:
			parts = append(parts, fmt.Sprintf("cron[replicas=%s]", t.Cron.DesiredReplicas))
		default:
			parts = append(parts, t.Type)
		}
	}
	return strings.Join(parts, ",")
}
