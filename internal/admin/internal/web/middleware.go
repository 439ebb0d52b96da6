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
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/admin/internal/domain"
	"github.com/noahrognon/commande-appli/internal/admin/internal/service"
)

const CtxAdminKey = "_admin"

// GuardBuilder 管理后台的登录校验, 先看 cookie, 再看 Authorization 头
type GuardBuilder struct {
	svc    service.Service
	cookie CookieConfig
	logger *elog.Component
}

func NewGuardBuilder(svc service.Service, cookie CookieConfig) *GuardBuilder {
	return &GuardBuilder{
		svc:    svc,
		cookie: cookie,
		logger: elog.DefaultLogger,
	}
}

func (b *GuardBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		a, err := b.svc.Authenticate(ctx, b.token(ctx))
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) {
				b.logger.Error("校验管理员身份失败", elog.FieldErr(err))
			}
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Set(CtxAdminKey, a)
		ctx.Next()
	}
}

func (b *GuardBuilder) token(ctx *gin.Context) string {
	if token, err := ctx.Cookie(b.cookie.Name); err == nil && token != "" {
		return token
	}
	token, ok := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// AdminFromContext 只能在 Guard 之后调用
func AdminFromContext(ctx *gin.Context) (domain.Admin, bool) {
	val, ok := ctx.Get(CtxAdminKey)
	if !ok {
		return domain.Admin{}, false
	}
	a, ok := val.(domain.Admin)
	return a, ok
}
