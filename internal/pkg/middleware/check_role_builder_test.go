// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	session.Session
	claims session.Claims
}

func (f *fakeSession) Claims() session.Claims { return f.claims }

type fakeProvider struct {
	session.Provider
	sess session.Session
	err  error
}

func (f *fakeProvider) Get(_ *gctx.Context) (session.Session, error) {
	return f.sess, f.err
}

func TestCheckRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		provider session.Provider
		allowed  []string
		wantCode int
	}{
		{
			name:     "not logged in",
			provider: &fakeProvider{err: errors.New("no session")},
			allowed:  []string{"employee", "admin"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "customer blocked from staff route",
			provider: &fakeProvider{sess: &fakeSession{claims: session.Claims{
				Uid:  123,
				Data: map[string]string{"role": "customer"},
			}}},
			allowed:  []string{"employee", "admin"},
			wantCode: http.StatusForbidden,
		},
		{
			name: "employee allowed",
			provider: &fakeProvider{sess: &fakeSession{claims: session.Claims{
				Uid:  124,
				Data: map[string]string{"role": "employee"},
			}}},
			allowed:  []string{"employee", "admin"},
			wantCode: http.StatusOK,
		},
		{
			name: "admin allowed on admin-only route",
			provider: &fakeProvider{sess: &fakeSession{claims: session.Claims{
				Uid:  125,
				Data: map[string]string{"role": "admin"},
			}}},
			allowed:  []string{"admin"},
			wantCode: http.StatusOK,
		},
		{
			name: "employee blocked from admin-only route",
			provider: &fakeProvider{sess: &fakeSession{claims: session.Claims{
				Uid:  126,
				Data: map[string]string{"role": "employee"},
			}}},
			allowed:  []string{"admin"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			builder := NewCheckRoleMiddlewareBuilder(tc.allowed...)
			builder.sp = tc.provider

			server := gin.New()
			server.Use(builder.Build())
			server.GET("/probe", func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})

			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
