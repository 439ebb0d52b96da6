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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailConfig_ApplyEnv(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PASS", "")
	cfg := MailConfig{
		From: "noreply@example.com",
		SMTP: SMTPConfig{Host: "localhost", Password: "from-yaml"},
	}
	cfg.ApplyEnv()
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	// 空的环境变量不覆盖
	assert.Equal(t, "from-yaml", cfg.SMTP.Password)
	assert.Equal(t, "noreply@example.com", cfg.From)
}

func TestAdminSessionConfig_ApplyEnv(t *testing.T) {
	t.Setenv("ADMIN_SESSION_SECRET", "s3cret")
	var cfg AdminSessionConfig
	cfg.ApplyEnv()
	assert.Equal(t, "s3cret", cfg.Secret)
}
