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

package admin

import (
	"github.com/noahrognon/commande-appli/internal/admin/internal/domain"
	"github.com/noahrognon/commande-appli/internal/admin/internal/service"
	"github.com/noahrognon/commande-appli/internal/admin/internal/web"
)

type Handler = web.Handler
type GuardBuilder = web.GuardBuilder
type Service = service.Service
type Admin = domain.Admin
type CookieConfig = web.CookieConfig

var (
	ErrInvalidCredentials = service.ErrInvalidCredentials
	ErrDuplicatedEmail    = service.ErrDuplicatedEmail
	AdminFromContext      = web.AdminFromContext
)

type Config struct {
	// Secret 签名密钥, 为空时拒绝启动
	Secret string
	Cookie CookieConfig
}
