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

package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	ctxutil "github.com/goodrain/rainbond-scaler/api/util/ctx"
	httputil "github.com/goodrain/rainbond-scaler/util/http"
)

//InitRuntime seeds the runtime id of the url into the request context
func InitRuntime(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		runtimeID := chi.URLParam(r, "runtime_id")
		if runtimeID == "" {
			httputil.ReturnError(r, w, 404, "runtime id can not be empty")
			return
		}
		ctx := context.WithValue(r.Context(), ctxutil.ContextKey("runtime_id"), runtimeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}
