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
	"fmt"

	"github.com/ecodeclub/voltmart/internal/notification/internal/domain"
	"github.com/ecodeclub/voltmart/internal/notification/internal/service/email"
)

type Service interface {
	SendOrderConfirmed(ctx context.Context, n domain.OrderNotification) error
	SendOrderReady(ctx context.Context, n domain.OrderNotification) error
}

func NewService(emailSvc email.Service) Service {
	return &service{emailSvc: emailSvc}
}

type service struct {
	emailSvc email.Service
}

func (s *service) SendOrderConfirmed(ctx context.Context, n domain.OrderNotification) error {
	subject := fmt.Sprintf("Order %s confirmed", n.OrderSN)
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Thanks for your order <strong>%s</strong>. We charged %s.</p>
<p>We'll email you again when it's ready for pickup. Bring your pickup code:</p>
<p style="font-size:24px"><strong>%s</strong></p>`,
		n.Name, n.OrderSN, dollars(n.TotalCents), n.PickupCode)
	return s.emailSvc.Send(ctx, subject, n.Email, []byte(body))
}

func (s *service) SendOrderReady(ctx context.Context, n domain.OrderNotification) error {
	subject := fmt.Sprintf("Order %s is ready for pickup", n.OrderSN)
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your order <strong>%s</strong> is ready at the counter.</p>
<p>Show this pickup code when you arrive:</p>
<p style="font-size:24px"><strong>%s</strong></p>`,
		n.Name, n.OrderSN, n.PickupCode)
	return s.emailSvc.Send(ctx, subject, n.Email, []byte(body))
}

func dollars(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
