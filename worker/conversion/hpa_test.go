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

package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	autoscalingv2 "k8s.io/api/autoscaling/v2"
	corev1 "k8s.io/api/core/v1"

	dbmodel "github.com/goodrain/rainbond-scaler/db/model"
)

func TestScaledRuleHPA(t *testing.T) {
	rule := &dbmodel.ScaledRules{
		RuleID:          "rule1",
		RuntimeID:       "runtime1",
		ServiceName:     "web",
		MinReplicaCount: 2,
		MaxReplicaCount: 10,
	}
	triggers := []*dbmodel.ScaledRuleTriggers{
		{RuleID: "rule1", TriggerType: "cpu", MetadataType: "Utilization", Value: "85"},
		{RuleID: "rule1", TriggerType: "cron", CronStart: "0 8 * * *", CronEnd: "0 20 * * *", DesiredReplicas: "5", Timezone: "Asia/Shanghai"},
	}

	hpa := ScaledRuleHPA(rule, triggers)
	require.NotNil(t, hpa)

	assert.Equal(t, "rule1", hpa.Name)
	assert.Equal(t, "runtime1", hpa.Namespace)
	assert.Equal(t, int32(2), *hpa.Spec.MinReplicas)
	assert.Equal(t, int32(10), hpa.Spec.MaxReplicas)
	assert.Equal(t, "web", hpa.Spec.ScaleTargetRef.Name)

	require.Len(t, hpa.Spec.Metrics, 1)
	metric := hpa.Spec.Metrics[0]
	assert.Equal(t, autoscalingv2.ResourceMetricSourceType, metric.Type)
	assert.Equal(t, corev1.ResourceCPU, metric.Resource.Name)
	assert.Equal(t, int32(85), *metric.Resource.Target.AverageUtilization)

	assert.Equal(t, "0 8 * * *", hpa.Annotations[AnnotationCronStart])
	assert.Equal(t, "5", hpa.Annotations[AnnotationCronReplicas])
}

func TestScaledRuleHPAIgnoresBrokenTriggers(t *testing.T) {
	rule := &dbmodel.ScaledRules{RuleID: "rule1", RuntimeID: "runtime1", ServiceName: "web", MaxReplicaCount: 3}

	// a zero target and an unknown metadata type never take effect
	hpa := ScaledRuleHPA(rule, []*dbmodel.ScaledRuleTriggers{
		{RuleID: "rule1", TriggerType: "cpu", MetadataType: "Utilization", Value: "0"},
		{RuleID: "rule1", TriggerType: "memory", MetadataType: "AverageValue", Value: "70"},
	})
	assert.Nil(t, hpa)

	hpa = ScaledRuleHPA(rule, nil)
	assert.Nil(t, hpa)
}
