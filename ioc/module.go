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
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/noahrognon/commande-appli/config"
	"github.com/noahrognon/commande-appli/internal/admin"
	"github.com/noahrognon/commande-appli/internal/notification"
	"github.com/noahrognon/commande-appli/internal/order"
	"github.com/noahrognon/commande-appli/internal/preorder"
	"github.com/noahrognon/commande-appli/internal/service/email"
	"github.com/noahrognon/commande-appli/internal/user"
)

func InitUserModule(db *egorm.Component, ec ecache.Cache) *user.Module {
	return user.InitModule(db, ec)
}

func InitPreorderModule(db *egorm.Component) *preorder.Module {
	return preorder.InitModule(db)
}

func InitNotificationModule(db *egorm.Component, ec ecache.Cache, transport email.Service) *notification.Module {
	var site config.SiteConfig
	if err := econf.UnmarshalKey("site", &site); err != nil {
		panic(err)
	}
	site.ApplyEnv()
	var cfg config.NotificationConfig
	if err := econf.UnmarshalKey("notification", &cfg); err != nil {
		panic(err)
	}
	cfg.ApplyEnv()
	return notification.InitModule(db, ec, transport, notification.Config{
		SiteURL:       site.URL,
		TestRecipient: cfg.TestRecipient,
	})
}

func InitOrderModule(db *egorm.Component,
	q mq.MQ,
	pm *preorder.Module,
	nm *notification.Module,
	um *user.Module) *order.Module {
	var cfg config.SweepConfig
	if err := econf.UnmarshalKey("sweep", &cfg); err != nil {
		panic(err)
	}
	m, err := order.InitModule(db, q, pm, nm, um, order.SweepConfig{
		Concurrency:     cfg.Concurrency,
		SupplierETADays: cfg.SupplierETADays,
	})
	if err != nil {
		panic(err)
	}
	return m
}

// InitAdminModule 没有配置签名密钥时 admin.InitModule 会 panic
func InitAdminModule(db *egorm.Component) *admin.Module {
	var cfg config.AdminSessionConfig
	if err := econf.UnmarshalKey("adminSession", &cfg); err != nil {
		panic(err)
	}
	cfg.ApplyEnv()
	return admin.InitModule(db, admin.Config{
		Secret: cfg.Secret,
		Cookie: admin.CookieConfig{
			Name:   cfg.CookieName,
			Domain: cfg.CookieDomain,
			Secure: cfg.CookieSecure,
		},
	})
}
