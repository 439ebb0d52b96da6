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

import "time"

type CampaignStatus string

const (
	CampaignStatusOpen   CampaignStatus = "open"
	CampaignStatusClosed CampaignStatus = "closed"
)

func (s CampaignStatus) String() string {
	return string(s)
}

// Campaign 预售活动, 同一时间最多只有一个处于 open 状态
type Campaign struct {
	Id      int64
	Name    string
	Status  CampaignStatus
	EndDate time.Time
}

// IsOpen 只看状态, 已过截止时间但没有关闭的活动仍然是 open
func (c Campaign) IsOpen() bool {
	return c.Status == CampaignStatusOpen
}

// DaysLeft floor((EndDate - now) / 24h)
func (c Campaign) DaysLeft(now time.Time) int64 {
	const day = 24 * time.Hour
	d := c.EndDate.Sub(now)
	days := int64(d / day)
	if d < 0 && d%day != 0 {
		days--
	}
	return days
}
