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

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gotomicro/ego/core/econf"
	"github.com/noahrognon/commande-appli/internal/admin"
	"github.com/noahrognon/commande-appli/internal/order"
	"github.com/noahrognon/commande-appli/ioc"
	"gopkg.in/yaml.v3"
)

// Loader 按需初始化依赖, 管理员命令不需要邮件和消息队列
type Loader interface {
	SweepService(configPath string) (order.SweepService, error)
	AdminService(configPath string) (admin.Service, error)
}

type iocLoader struct{}

func (l *iocLoader) SweepService(configPath string) (order.SweepService, error) {
	if err := loadConfig(configPath); err != nil {
		return nil, err
	}
	db := ioc.InitDB()
	ec := ioc.InitCache(ioc.InitRedis())
	um := ioc.InitUserModule(db, ec)
	pm := ioc.InitPreorderModule(db)
	nm := ioc.InitNotificationModule(db, ec, ioc.InitEmailService(ioc.InitMailConfig()))
	om := ioc.InitOrderModule(db, ioc.InitMQ(), pm, nm, um)
	return om.SweepSvc, nil
}

func (l *iocLoader) AdminService(configPath string) (admin.Service, error) {
	if err := loadConfig(configPath); err != nil {
		return nil, err
	}
	return ioc.InitAdminModule(ioc.InitDB()).Svc, nil
}

func loadConfig(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
}
