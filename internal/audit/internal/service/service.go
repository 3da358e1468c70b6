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

package service

import (
	"context"

	"github.com/ecodeclub/voltmart/internal/audit/internal/domain"
	"github.com/ecodeclub/voltmart/internal/audit/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=auditmocks -destination=../../mocks/audit.mock.go -typed Service
type Service interface {
	// Log records an audit entry best-effort: a failed write must never break
	// the mutation being audited, so failures are logged and swallowed.
	Log(ctx context.Context, entry domain.AuditLog)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.AuditLog, int64, error)
}

func NewService(repo repository.AuditLogRepository) Service {
	return &service{repo: repo, l: elog.DefaultLogger}
}

type service struct {
	repo repository.AuditLogRepository
	l    *elog.Component
}

func (s *service) Log(ctx context.Context, entry domain.AuditLog) {
	if _, err := s.repo.Create(ctx, entry); err != nil {
		s.l.Error("write audit entry failed",
			elog.FieldErr(err),
			elog.String("action", entry.Action),
			elog.String("target_type", entry.TargetType),
			elog.String("target_id", entry.TargetID))
	}
}

func (s *service) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.AuditLog, int64, error) {
	var (
		eg      errgroup.Group
		entries []domain.AuditLog
		total   int64
	)
	eg.Go(func() error {
		var err error
		entries, err = s.repo.List(ctx, f, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, f)
		return err
	})
	return entries, total, eg.Wait()
}
