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

package domain

import "fmt"

type SendResult uint8

const (
	SendResultSent SendResult = iota + 1
	// SendResultSkipped 已经发送过, 或者并发时被别人抢先
	SendResultSkipped
	// SendResultFailed 可以重试
	SendResultFailed
)

func (r SendResult) String() string {
	switch r {
	case SendResultSent:
		return "sent"
	case SendResultSkipped:
		return "skipped"
	case SendResultFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Key 去重键
type Key struct {
	Kind       Kind
	Uid        int64
	CampaignId int64
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%d:%d", k.Kind.Key(), k.Uid, k.CampaignId)
}

type Recipient struct {
	Uid       int64
	Email     string
	FirstName string
}

type Message struct {
	Subject string
	HTML    string
	Text    string
}

// RenderFunc 纯函数, 不允许有副作用
type RenderFunc func(r Recipient) (Message, error)

type SendRequest struct {
	Kind       Kind
	Recipient  Recipient
	CampaignId int64
	OrderId    int64
	Render     RenderFunc
}

func (r SendRequest) Key() Key {
	return Key{
		Kind:       r.Kind,
		Uid:        r.Recipient.Uid,
		CampaignId: r.CampaignId,
	}
}
