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
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
)

//go:generate mockgen -source=./audit.go -package=daomocks -destination=mocks/audit.mock.go -typed AuditLogDAO
type AuditLogDAO interface {
	Create(ctx context.Context, entry AuditLog) (int64, error)
	List(ctx context.Context, cond Condition, offset, limit int) ([]AuditLog, error)
	Count(ctx context.Context, cond Condition) (int64, error)
}

// Condition mirrors domain.Filter at the storage layer.
type Condition struct {
	ActorID    int64
	TargetType string
	TargetID   string
	Action     string
}

type AuditLogGORMDAO struct {
	db *egorm.Component
}

func NewAuditLogGORMDAO(db *egorm.Component) AuditLogDAO {
	return &AuditLogGORMDAO{db: db}
}

func (d *AuditLogGORMDAO) Create(ctx context.Context, entry AuditLog) (int64, error) {
	entry.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&entry).Error
	return entry.Id, err
}

func (d *AuditLogGORMDAO) List(ctx context.Context, cond Condition, offset, limit int) ([]AuditLog, error) {
	var res []AuditLog
	err := d.buildQuery(ctx, cond).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *AuditLogGORMDAO) Count(ctx context.Context, cond Condition) (int64, error) {
	var count int64
	err := d.buildQuery(ctx, cond).Model(&AuditLog{}).Count(&count).Error
	return count, err
}

func (d *AuditLogGORMDAO) buildQuery(ctx context.Context, cond Condition) *egorm.Component {
	query := d.db.WithContext(ctx)
	if cond.ActorID != 0 {
		query = query.Where("actor_id = ?", cond.ActorID)
	}
	if cond.TargetType != "" {
		query = query.Where("target_type = ?", cond.TargetType)
	}
	if cond.TargetID != "" {
		query = query.Where("target_id = ?", cond.TargetID)
	}
	if cond.Action != "" {
		query = query.Where("action LIKE ?", "%"+cond.Action+"%")
	}
	return query
}

// AuditLog is append-only: the DAO exposes no update or delete methods.
type AuditLog struct {
	Id         int64          `gorm:"primaryKey;autoIncrement;comment:audit entry id"`
	ActorID    int64          `gorm:"not null;index:idx_actor_id;comment:acting user id, 0 for system"`
	ActorName  string         `gorm:"type:varchar(255);not null;comment:acting user name or webhook origin"`
	Action     string         `gorm:"type:varchar(255);not null;index:idx_action;comment:action name, e.g. order.status_update"`
	TargetType string         `gorm:"type:varchar(64);not null;index:idx_target,priority:1;comment:target record type"`
	TargetID   string         `gorm:"type:varchar(255);not null;index:idx_target,priority:2;comment:target record id"`
	BeforeSnap sql.NullString `gorm:"column:before_snap;type:text;comment:JSON snapshot before the change"`
	AfterSnap  sql.NullString `gorm:"column:after_snap;type:text;comment:JSON snapshot after the change"`
	IP         string         `gorm:"type:varchar(64);not null;comment:request origin ip"`
	UserAgent  string         `gorm:"type:varchar(512);comment:request user agent"`
	Ctime      int64          `gorm:"index:idx_ctime"`
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&AuditLog{})
}
