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
	"testing"

	"github.com/ecodeclub/voltmart/internal/notification/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	subject string
	to      string
	content string
}

type fakeEmailService struct {
	sent []sentEmail
}

func (f *fakeEmailService) Send(_ context.Context, subject, to string, content []byte) error {
	f.sent = append(f.sent, sentEmail{subject: subject, to: to, content: string(content)})
	return nil
}

func TestService_SendOrderConfirmed(t *testing.T) {
	t.Parallel()

	emailSvc := &fakeEmailService{}
	svc := NewService(emailSvc)

	err := svc.SendOrderConfirmed(context.Background(), domain.OrderNotification{
		OrderSN:    "VM20260115001",
		Name:       "Dana Reyes",
		Email:      "dana@example.com",
		TotalCents: 2397,
		PickupCode: "7KQ2M9XA",
	})
	require.NoError(t, err)

	require.Len(t, emailSvc.sent, 1)
	msg := emailSvc.sent[0]
	assert.Equal(t, "dana@example.com", msg.to)
	assert.Contains(t, msg.subject, "VM20260115001")
	assert.Contains(t, msg.content, "$23.97")
	assert.Contains(t, msg.content, "7KQ2M9XA")
}

func TestService_SendOrderReady(t *testing.T) {
	t.Parallel()

	emailSvc := &fakeEmailService{}
	svc := NewService(emailSvc)

	err := svc.SendOrderReady(context.Background(), domain.OrderNotification{
		OrderSN:    "VM20260115001",
		Name:       "Dana Reyes",
		Email:      "dana@example.com",
		PickupCode: "7KQ2M9XA",
	})
	require.NoError(t, err)

	require.Len(t, emailSvc.sent, 1)
	msg := emailSvc.sent[0]
	assert.Contains(t, msg.subject, "ready for pickup")
	assert.Contains(t, msg.content, "7KQ2M9XA")
}

func TestDollars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$9.99", dollars(999))
	assert.Equal(t, "$0.05", dollars(5))
	assert.Equal(t, "$120.00", dollars(12000))
}
