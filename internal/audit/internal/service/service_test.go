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
	"errors"
	"testing"

	"github.com/ecodeclub/voltmart/internal/audit/internal/domain"
	"github.com/ecodeclub/voltmart/internal/audit/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditLogRepository struct {
	repository.AuditLogRepository

	created   []domain.AuditLog
	createErr error

	entries []domain.AuditLog
	total   int64
	listErr error
}

func (f *fakeAuditLogRepository) Create(_ context.Context, entry domain.AuditLog) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, entry)
	return int64(len(f.created)), nil
}

func (f *fakeAuditLogRepository) List(_ context.Context, _ domain.Filter, _, _ int) ([]domain.AuditLog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeAuditLogRepository) Total(_ context.Context, _ domain.Filter) (int64, error) {
	if f.listErr != nil {
		return 0, f.listErr
	}
	return f.total, nil
}

func newTestService(repo repository.AuditLogRepository) Service {
	return &service{repo: repo, l: elog.DefaultLogger}
}

func TestService_Log(t *testing.T) {
	t.Parallel()
	repo := &fakeAuditLogRepository{}
	svc := newTestService(repo)

	svc.Log(context.Background(), domain.AuditLog{
		ActorID:    7,
		ActorName:  "R. Okafor",
		Action:     "product.update",
		TargetType: "product",
		TargetID:   "11",
	})

	require.Len(t, repo.created, 1)
	assert.Equal(t, "product.update", repo.created[0].Action)
	assert.Equal(t, int64(7), repo.created[0].ActorID)
}

func TestService_Log_WriteFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	repo := &fakeAuditLogRepository{createErr: errors.New("db gone")}
	svc := newTestService(repo)

	// must not panic or surface anything to the caller
	svc.Log(context.Background(), domain.AuditLog{Action: "order.cancel"})

	assert.Empty(t, repo.created)
}

func TestService_List(t *testing.T) {
	t.Parallel()
	repo := &fakeAuditLogRepository{
		entries: []domain.AuditLog{
			{ID: 2, Action: "order.paid"},
			{ID: 1, Action: "order.create"},
		},
		total: 42,
	}
	svc := newTestService(repo)

	entries, total, err := svc.List(context.Background(), domain.Filter{}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	require.Len(t, entries, 2)
	assert.Equal(t, "order.paid", entries[0].Action)
}

func TestService_List_RepositoryFailure(t *testing.T) {
	t.Parallel()
	repo := &fakeAuditLogRepository{listErr: errors.New("db gone")}
	svc := newTestService(repo)

	_, _, err := svc.List(context.Background(), domain.Filter{}, 0, 20)
	assert.Error(t, err)
}
