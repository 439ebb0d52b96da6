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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlErrDuplicateEntry uint16 = 1062

// ErrDuplicatedEmailLog 唯一索引冲突, 说明别人已经发送过了
var ErrDuplicatedEmailLog = errors.New("邮件记录已存在")

type EmailLogDAO interface {
	Exists(ctx context.Context, typ string, uid, campaignId int64) (bool, error)
	Insert(ctx context.Context, log EmailLog) (int64, error)
}

type EmailLogGORMDAO struct {
	db *egorm.Component
}

func NewEmailLogGORMDAO(db *egorm.Component) EmailLogDAO {
	return &EmailLogGORMDAO{db: db}
}

func (g *EmailLogGORMDAO) Exists(ctx context.Context, typ string, uid, campaignId int64) (bool, error) {
	var log EmailLog
	err := g.db.WithContext(ctx).
		Select("id").
		Where("type = ? AND user_id = ? AND campaign_id = ?", typ, uid, campaignId).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (g *EmailLogGORMDAO) Insert(ctx context.Context, log EmailLog) (int64, error) {
	log.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&log).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
		return 0, ErrDuplicatedEmailLog
	}
	return log.Id, err
}

// EmailLog 一个 (type, user_id, campaign_id) 最多一条
type EmailLog struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	Type       string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_type_uid_campaign,priority:1;comment:通知类型,例如 preorder_reminder_3d"`
	UserId     int64  `gorm:"not null;uniqueIndex:uniq_type_uid_campaign,priority:2"`
	CampaignId int64  `gorm:"not null;uniqueIndex:uniq_type_uid_campaign,priority:3"`
	OrderId    int64  `gorm:"not null;default:0"`
	Ctime      int64
}

func (EmailLog) TableName() string {
	return "email_logs"
}
