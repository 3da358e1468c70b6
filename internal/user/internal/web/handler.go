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

package web

import (
	"errors"
	"net/mail"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/user/internal/domain"
	"github.com/ecodeclub/voltmart/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.UserService
	auditSvc audit.Service
}

func NewHandler(svc service.UserService, auditSvc audit.Service) *Handler {
	return &Handler{
		svc:      svc,
		auditSvc: auditSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil || len(req.Password) < 8 {
		return invalidInputResult, nil
	}
	user, err := h.svc.Register(ctx, domain.User{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
	}, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			return duplicateEmailResult, nil
		}
		return systemErrorResult, err
	}
	return h.startSession(ctx, user, "auth.register")
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	user, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return invalidCredentialsResult, nil
		}
		return systemErrorResult, err
	}
	return h.startSession(ctx, user, "auth.login")
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		ID:    sess.Claims().Uid,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// startSession issues the session with the role baked into the jwt claims so
// downstream role checks do not have to hit storage.
func (h *Handler) startSession(ctx *ginx.Context, user domain.User, action string) (ginx.Result, error) {
	_, err := session.NewSessionBuilder(ctx, user.ID).
		SetJwtData(map[string]string{
			"role": user.Role,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	h.auditSvc.Log(ctx, audit.AuditLog{
		ActorID:    user.ID,
		ActorName:  user.Email,
		Action:     action,
		TargetType: audit.TargetTypeUser,
		TargetID:   user.Email,
		IP:         ctx.ClientIP(),
		UserAgent:  ctx.GetHeader("User-Agent"),
	})
	return ginx.Result{Data: newProfile(user)}, nil
}

func newProfile(u domain.User) Profile {
	return Profile{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
