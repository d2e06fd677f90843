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
	"strconv"

	"github.com/sirupsen/logrus"

	autoscalingv2 "k8s.io/api/autoscaling/v2"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	dbmodel "github.com/goodrain/rainbond-scaler/db/model"
	"github.com/goodrain/rainbond-scaler/util"
)

// Annotations carrying the cron window, consumed by the cron scaler
const (
	AnnotationCronStart    = "scaler.goodrain.com/cron-start"
	AnnotationCronEnd      = "scaler.goodrain.com/cron-end"
	AnnotationCronReplicas = "scaler.goodrain.com/cron-replicas"
	AnnotationCronTimezone = "scaler.goodrain.com/cron-timezone"
)

var str2ResourceName = map[string]corev1.ResourceName{
	"cpu":    corev1.ResourceCPU,
	"memory": corev1.ResourceMemory,
}

//ScaledRuleHPA builds the HorizontalPodAutoscaler an applied rule
//materializes into. cpu/memory triggers become resource MetricSpecs,
//the cron trigger rides along as annotations. Returns nil when no
//trigger can take effect.
func ScaledRuleHPA(rule *dbmodel.ScaledRules, triggers []*dbmodel.ScaledRuleTriggers) *autoscalingv2.HorizontalPodAutoscaler {
	hpa := &autoscalingv2.HorizontalPodAutoscaler{
		ObjectMeta: metav1.ObjectMeta{
			Name:      rule.RuleID,
			Namespace: rule.RuntimeID,
			Labels: map[string]string{
				"rule_id":      rule.RuleID,
				"service_name": rule.ServiceName,
			},
		},
	}

	spec := autoscalingv2.HorizontalPodAutoscalerSpec{
		MinReplicas: util.Int32(int32(rule.MinReplicaCount)),
		MaxReplicas: int32(rule.MaxReplicaCount),
		ScaleTargetRef: autoscalingv2.CrossVersionObjectReference{
			Kind:       "Deployment",
			Name:       rule.ServiceName,
			APIVersion: "apps/v1",
		},
	}

	annotations := make(map[string]string)
	for _, trigger := range triggers {
		switch trigger.TriggerType {
		case dbmodel.TriggerTypeCPU, dbmodel.TriggerTypeMemory:
			if trigger.MetadataType != "Utilization" {
				logrus.Warningf("rule id: %s; unsupported metadata type: %s", rule.RuleID, trigger.MetadataType)
				continue
			}
			value, err := strconv.Atoi(trigger.Value)
			if err != nil || value <= 0 {
				// a zero or broken utilization target never takes effect
				continue
			}
			spec.Metrics = append(spec.Metrics, createResourceMetric(trigger.TriggerType, int32(value)))
		case dbmodel.TriggerTypeCron:
			annotations[AnnotationCronStart] = trigger.CronStart
			annotations[AnnotationCronEnd] = trigger.CronEnd
			annotations[AnnotationCronReplicas] = trigger.DesiredReplicas
			annotations[AnnotationCronTimezone] = trigger.Timezone
		default:
			logrus.Warningf("rule id: %s; unsupported trigger type: %s", rule.RuleID, trigger.TriggerType)
		}
	}

	if len(spec.Metrics) == 0 && len(annotations) == 0 {
		return nil
	}
	if len(annotations) > 0 {
		hpa.ObjectMeta.Annotations = annotations
	}
	hpa.Spec = spec

	return hpa
}

func createResourceMetric(resourceName string, value int32) autoscalingv2.MetricSpec {
	return autoscalingv2.MetricSpec{
		Type: autoscalingv2.ResourceMetricSourceType,
		Resource: &autoscalingv2.ResourceMetricSource{
			Name: str2ResourceName[resourceName],
			Target: autoscalingv2.MetricTarget{
				Type:               autoscalingv2.UtilizationMetricType,
				AverageUtilization: util.Int32(value),
			},
		},
	}
}
