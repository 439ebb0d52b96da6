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

package config

import (
	"os"
	"time"
)

// MailConfig Provider 取值 smtp, aliyun, console. 配置了多个通道时按顺序故障转移
type MailConfig struct {
	Providers []string      `yaml:"providers"`
	From      string        `yaml:"from"`
	Timeout   time.Duration `yaml:"timeout"`
	Retry     RetryConfig   `yaml:"retry"`
	SMTP      SMTPConfig    `yaml:"smtp"`
	Aliyun    AliyunConfig  `yaml:"aliyun"`
}

type RetryConfig struct {
	Interval   time.Duration `yaml:"interval"`
	MaxRetries int32         `yaml:"maxRetries"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type AliyunConfig struct {
	AccessKeyID     string `yaml:"accessKeyID"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	AccountName     string `yaml:"accountName"`
	FromAlias       string `yaml:"fromAlias"`
}

// ApplyEnv 密钥放在 .env 里, 环境变量优先
func (c *MailConfig) ApplyEnv() {
	c.SMTP.Host = envOr("SMTP_HOST", c.SMTP.Host)
	c.SMTP.Username = envOr("SMTP_USER", c.SMTP.Username)
	c.SMTP.Password = envOr("SMTP_PASS", c.SMTP.Password)
	c.From = envOr("MAIL_FROM", c.From)
	c.Aliyun.AccessKeyID = envOr("ALIYUN_ACCESS_KEY_ID", c.Aliyun.AccessKeyID)
	c.Aliyun.AccessKeySecret = envOr("ALIYUN_ACCESS_KEY_SECRET", c.Aliyun.AccessKeySecret)
}

type NotificationConfig struct {
	TestRecipient string `yaml:"testRecipient"`
}

func (c *NotificationConfig) ApplyEnv() {
	c.TestRecipient = envOr("EMAIL_TEST_TO", c.TestRecipient)
}

type SiteConfig struct {
	URL string `yaml:"url"`
}

func (c *SiteConfig) ApplyEnv() {
	c.URL = envOr("SITE_URL", c.URL)
}

type AdminSessionConfig struct {
	Secret       string `yaml:"secret"`
	CookieName   string `yaml:"cookieName"`
	CookieDomain string `yaml:"cookieDomain"`
	CookieSecure bool   `yaml:"cookieSecure"`
}

func (c *AdminSessionConfig) ApplyEnv() {
	c.Secret = envOr("ADMIN_SESSION_SECRET", c.Secret)
}

type SweepConfig struct {
	Concurrency     int `yaml:"concurrency"`
	SupplierETADays int `yaml:"supplierETADays"`
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
