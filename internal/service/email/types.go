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

package email

import (
	"context"
	"errors"
)

// ErrAllFailed 所有传输通道都发送失败
var ErrAllFailed = errors.New("所有邮件服务都失败")

//go:generate mockgen -source=./types.go -package=emailmocks -destination=./mocks/email.mock.go Service
type Service interface {
	// Send 失败均视为可重试
	Send(ctx context.Context, mail Mail) error
}

// Mail 已经渲染好的邮件
type Mail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}
