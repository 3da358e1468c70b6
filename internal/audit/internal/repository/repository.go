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

package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/voltmart/internal/audit/internal/domain"
	"github.com/ecodeclub/voltmart/internal/audit/internal/repository/dao"
)

type AuditLogRepository interface {
	Create(ctx context.Context, entry domain.AuditLog) (int64, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.AuditLog, error)
	Total(ctx context.Context, f domain.Filter) (int64, error)
}

func NewRepository(d dao.AuditLogDAO) AuditLogRepository {
	return &auditLogRepository{d: d}
}

type auditLogRepository struct {
	d dao.AuditLogDAO
}

func (r *auditLogRepository) Create(ctx context.Context, entry domain.AuditLog) (int64, error) {
	return r.d.Create(ctx, r.toEntity(entry))
}

func (r *auditLogRepository) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.AuditLog, error) {
	entries, err := r.d.List(ctx, r.toCondition(f), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entries, func(idx int, src dao.AuditLog) domain.AuditLog {
		return r.toDomain(src)
	}), nil
}

func (r *auditLogRepository) Total(ctx context.Context, f domain.Filter) (int64, error) {
	return r.d.Count(ctx, r.toCondition(f))
}

func (r *auditLogRepository) toCondition(f domain.Filter) dao.Condition {
	return dao.Condition{
		ActorID:    f.ActorID,
		TargetType: f.TargetType,
		TargetID:   f.TargetID,
		Action:     f.Action,
	}
}

func (r *auditLogRepository) toEntity(entry domain.AuditLog) dao.AuditLog {
	return dao.AuditLog{
		ActorID:    entry.ActorID,
		ActorName:  entry.ActorName,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		BeforeSnap: marshalSnapshot(entry.Before),
		AfterSnap:  marshalSnapshot(entry.After),
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
	}
}

func (r *auditLogRepository) toDomain(entry dao.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		ID:         entry.Id,
		ActorID:    entry.ActorID,
		ActorName:  entry.ActorName,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Before:     unmarshalSnapshot(entry.BeforeSnap),
		After:      unmarshalSnapshot(entry.AfterSnap),
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		Ctime:      entry.Ctime,
	}
}

func marshalSnapshot(snap map[string]any) sql.NullString {
	if len(snap) == 0 {
		return sql.NullString{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

func unmarshalSnapshot(snap sql.NullString) map[string]any {
	if !snap.Valid {
		return nil
	}
	var res map[string]any
	if err := json.Unmarshal([]byte(snap.String), &res); err != nil {
		return nil
	}
	return res
}
