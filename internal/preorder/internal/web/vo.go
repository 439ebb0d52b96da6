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

package web

import (
	"time"

	"github.com/noahrognon/commande-appli/internal/preorder/internal/domain"
)

type Campaign struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	EndDate  int64  `json:"endDate"`
	DaysLeft int64  `json:"daysLeft"`
}

func newCampaign(c domain.Campaign, now time.Time) Campaign {
	return Campaign{
		Id:       c.Id,
		Name:     c.Name,
		Status:   string(c.Status),
		EndDate:  c.EndDate.UnixMilli(),
		DaysLeft: c.DaysLeft(now),
	}
}

type ExtendReq struct {
	// 默认 24 小时
	Hours int64 `json:"hours"`
}

type ActionResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	CampaignId int64  `json:"campaignId,omitempty"`
	EndDate    int64  `json:"endDate,omitempty"`
}
