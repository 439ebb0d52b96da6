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

package ioc

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/noahrognon/commande-appli/internal/admin"
	"github.com/noahrognon/commande-appli/internal/notification"
	"github.com/noahrognon/commande-appli/internal/order"
	"github.com/noahrognon/commande-appli/internal/pkg/middleware"
	"github.com/noahrognon/commande-appli/internal/preorder"
)

type AdminServer *egin.Component

func InitAdminServer(am *admin.Module,
	pm *preorder.Module,
	om *order.Module,
	nm *notification.Module,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.Use(cors.New(corsConfig(econf.GetStringSlice("cors.adminOrigins"))))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	am.Hdl.PublicRoutes(res.Engine)
	// 管理员校验
	res.Use(am.Guard.Build())
	am.Hdl.PrivateRoutes(res.Engine)
	pm.AdminHdl.PrivateRoutes(res.Engine)
	om.AdminHdl.PrivateRoutes(res.Engine)
	nm.AdminHdl.PrivateRoutes(res.Engine)
	return res
}
