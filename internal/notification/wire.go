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

//go:build wireinject

package notification

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/noahrognon/commande-appli/internal/notification/internal/repository"
	"github.com/noahrognon/commande-appli/internal/notification/internal/repository/cache"
	"github.com/noahrognon/commande-appli/internal/notification/internal/repository/dao"
	"github.com/noahrognon/commande-appli/internal/notification/internal/service"
	"github.com/noahrognon/commande-appli/internal/notification/internal/service/tpl"
	"github.com/noahrognon/commande-appli/internal/notification/internal/web"
	"github.com/noahrognon/commande-appli/internal/service/email"
)

var ProviderSet = wire.NewSet(
	web.NewAdminHandler,
	service.NewService,
	repository.NewCachedEmailLogRepository,
	cache.NewSentECache,
	initDAO,
	initServiceConfig,
	initRenderer)

func InitModule(db *egorm.Component, ec ecache.Cache, transport email.Service, cfg Config) *Module {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module)
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.EmailLogDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewEmailLogGORMDAO(db)
}

func initServiceConfig(cfg Config) service.Config {
	return service.Config{TestRecipient: cfg.TestRecipient}
}

func initRenderer(cfg Config) *tpl.Renderer {
	r, err := tpl.NewRenderer(cfg.SiteURL)
	if err != nil {
		panic(err)
	}
	return r
}
