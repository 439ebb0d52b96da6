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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/noahrognon/commande-appli/internal/admin/internal/service"
)

type Handler struct {
	svc    service.Service
	cookie CookieConfig
}

func NewHandler(svc service.Service, cookie CookieConfig) *Handler {
	return &Handler{
		svc:    svc,
		cookie: cookie,
	}
}

// PublicRoutes 登录和退出不需要经过 Guard
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/admin/login", ginx.B[LoginReq](h.Login))
	server.POST("/admin/logout", ginx.W(h.Logout))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/admin/me", ginx.W(h.Me))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	token, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return invalidCredentialsResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	h.setCookie(ctx.Context, token, int(h.svc.TokenTTL().Seconds()))
	return ginx.Result{
		Data: LoginResp{Ok: true, Token: token},
	}, nil
}

func (h *Handler) Logout(ctx *ginx.Context) (ginx.Result, error) {
	h.setCookie(ctx.Context, "", -1)
	return ginx.Result{
		Data: LoginResp{Ok: true},
	}, nil
}

func (h *Handler) setCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(h.cookie.Name, value, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *Handler) Me(ctx *ginx.Context) (ginx.Result, error) {
	a, ok := AdminFromContext(ctx.Context)
	if !ok {
		return systemErrorResult, errors.New("上下文中没有管理员信息")
	}
	return ginx.Result{
		Data: Profile{Id: a.Id, Email: a.Email},
	}, nil
}
