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

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

//ResponseBody api response body
type ResponseBody struct {
	ValidationError url.Values  `json:"validation_error,omitempty"`
	Msg             string      `json:"msg,omitempty"`
	Bean            interface{} `json:"bean,omitempty"`
	List            interface{} `json:"list,omitempty"`
}

//ParseResponseBody parse response body
func ParseResponseBody(red io.Reader) (re ResponseBody, err error) {
	if red == nil {
		return re, errors.New("readcloser can not be nil")
	}
	err = json.NewDecoder(red).Decode(&re)
	return
}

//ReturnSuccess return success with bean
func ReturnSuccess(r *http.Request, w http.ResponseWriter, bean interface{}) {
	render.Status(r, 200)
	render.JSON(w, r, ResponseBody{Bean: bean})
}

//ReturnList return success with list
func ReturnList(r *http.Request, w http.ResponseWriter, list interface{}) {
	render.Status(r, 200)
	render.JSON(w, r, ResponseBody{List: list})
}

//ReturnError return error message
func ReturnError(r *http.Request, w http.ResponseWriter, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, ResponseBody{Msg: msg})
}

//ReturnValidationError return validation error messages, one per invalid field
func ReturnValidationError(r *http.Request, w http.ResponseWriter, errs url.Values) {
	render.Status(r, 400)
	render.JSON(w, r, ResponseBody{ValidationError: errs, Msg: "validation failure"})
}

//ValidatorRequestStructAndErrorResponse parse and validate the request body
//into v. Writes the error response and returns false when the body is not
//parsable or a struct tag rule fails.
func ValidatorRequestStructAndErrorResponse(r *http.Request, w http.ResponseWriter, v interface{}, msgs map[string]string) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logrus.Debugf("parse request body: %v", err)
		ReturnError(r, w, 400, "request body is not a valid json")
		return false
	}
	if err := validate.Struct(v); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			ReturnError(r, w, 400, err.Error())
			return false
		}
		errs := url.Values{}
		for _, fe := range verrs {
			msg := fe.Field() + " failed on the '" + fe.Tag() + "' rule"
			if msgs != nil {
				if custom, ok := msgs[fe.Field()]; ok {
					msg = custom
				}
			}
			errs.Add(fe.Field(), msg)
		}
		ReturnValidationError(r, w, errs)
		return false
	}
	return true
}
