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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"

	"github.com/goodrain/rainbond-scaler/api/model"
)

//RuleService http client of the scaled rules api
type RuleService struct {
	endpoint string
	client   *http.Client
}

//New create a rule service client
func New(endpoint string) *RuleService {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = fmt.Sprintf("http://%s", endpoint)
	}
	return &RuleService{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

type responseBody struct {
	ValidationError url.Values      `json:"validation_error,omitempty"`
	Msg             string          `json:"msg,omitempty"`
	Bean            json.RawMessage `json:"bean,omitempty"`
	List            json.RawMessage `json:"list,omitempty"`
}

//FetchScaledRules fetch the rules of a runtime, optionally filtered by
//service names
func (s *RuleService) FetchScaledRules(ctx context.Context, runtimeID string, serviceNames []string) ([]*model.Rule, error) {
	path := fmt.Sprintf("/v2/runtimes/%s/scaled-rules", runtimeID)
	if len(serviceNames) > 0 {
		query := url.Values{}
		for _, name := range serviceNames {
			query.Add("service", name)
		}
		path += "?" + query.Encode()
	}
	body, err := s.do(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	return decodeRules(body)
}

//CreateScaledRules create one rule per service
func (s *RuleService) CreateScaledRules(ctx context.Context, runtimeID string, services []model.ServiceScaledConfig) ([]*model.Rule, error) {
	path := fmt.Sprintf("/v2/runtimes/%s/scaled-rules", runtimeID)
	body, err := s.do(ctx, "POST", path, model.CreateScaledRulesReq{Services: services})
	if err != nil {
		return nil, err
	}
	return decodeRules(body)
}

//UpdateScaledRules update existing rules
func (s *RuleService) UpdateScaledRules(ctx context.Context, runtimeID string, rules []model.RuleScaledConfig) ([]*model.Rule, error) {
	path := fmt.Sprintf("/v2/runtimes/%s/scaled-rules", runtimeID)
	body, err := s.do(ctx, "PUT", path, model.UpdateScaledRulesReq{Rules: rules})
	if err != nil {
		return nil, err
	}
	return decodeRules(body)
}

//ApplyOrCancelRules apply or cancel the listed rules
func (s *RuleService) ApplyOrCancelRules(ctx context.Context, runtimeID string, actions []model.RuleAction) error {
	path := fmt.Sprintf("/v2/runtimes/%s/scaled-rules/actions", runtimeID)
	_, err := s.do(ctx, "POST", path, model.RuleActionsReq{Actions: actions})
	return err
}

func (s *RuleService) do(ctx context.Context, method, path string, reqBody interface{}) (*responseBody, error) {
	var reader *bytes.Reader
	if reqBody != nil {
		b, err := ffjson.Marshal(reqBody)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.endpoint+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	var body responseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode response body")
	}
	if resp.StatusCode/100 != 2 {
		if len(body.ValidationError) > 0 {
			return nil, errors.Errorf("%s %s: %d: %v", method, path, resp.StatusCode, body.ValidationError)
		}
		return nil, errors.Errorf("%s %s: %d: %s", method, path, resp.StatusCode, body.Msg)
	}
	return &body, nil
}

func decodeRules(body *responseBody) ([]*model.Rule, error) {
	if len(body.List) == 0 {
		return nil, nil
	}
	var rules []*model.Rule
	if err := ffjson.Unmarshal(body.List, &rules); err != nil {
		return nil, errors.Wrap(err, "decode rules")
	}
	return rules, nil
}
