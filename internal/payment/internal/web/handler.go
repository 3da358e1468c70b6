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
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/voltmart/internal/payment/internal/domain"
	"github.com/ecodeclub/voltmart/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

var _ ginx.Handler = &WebhookHandler{}

// WebhookHandler terminates provider webhooks. It is a raw gin handler
// because signature verification needs the unparsed request body, and the
// provider expects plain status codes rather than the Result envelope.
type WebhookHandler struct {
	svc           service.Service
	webhookSecret string
	logger        *elog.Component
}

func NewWebhookHandler(svc service.Service, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		svc:           svc,
		webhookSecret: webhookSecret,
		logger:        elog.DefaultLogger,
	}
}

func (h *WebhookHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *WebhookHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/payment/webhook", h.HandleWebhook)
}

func (h *WebhookHandler) HandleWebhook(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	stripeEvt, err := webhook.ConstructEvent(payload,
		ctx.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", elog.FieldErr(err))
		ctx.Status(http.StatusBadRequest)
		return
	}

	// Once the signature checks out the provider always gets a 2xx.
	// Returning an error would only trigger retries of an event we either
	// do not care about or will reconcile through the sync job.
	evt, ok, err := h.toProviderEvent(stripeEvt)
	if err != nil {
		h.logger.Error("malformed provider event",
			elog.String("event_id", stripeEvt.ID),
			elog.String("type", string(stripeEvt.Type)),
			elog.FieldErr(err))
		ctx.Status(http.StatusOK)
		return
	}
	if !ok {
		h.logger.Info("unhandled provider event type acked",
			elog.String("event_id", stripeEvt.ID),
			elog.String("type", string(stripeEvt.Type)))
		ctx.Status(http.StatusOK)
		return
	}
	if err = h.svc.HandleProviderEvent(ctx.Request.Context(), evt); err != nil {
		h.logger.Error("handle provider event failed",
			elog.String("event_id", stripeEvt.ID),
			elog.FieldErr(err))
	}
	ctx.Status(http.StatusOK)
}

func (h *WebhookHandler) toProviderEvent(stripeEvt stripego.Event) (domain.ProviderEvent, bool, error) {
	switch stripeEvt.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var intent stripego.PaymentIntent
		if err := json.Unmarshal(stripeEvt.Data.Raw, &intent); err != nil {
			return domain.ProviderEvent{}, false, fmt.Errorf("decode payment intent failed: %w", err)
		}
		kind := domain.ProviderEventSucceeded
		if stripeEvt.Type == "payment_intent.payment_failed" {
			kind = domain.ProviderEventFailed
		}
		return domain.ProviderEvent{
			ID:       stripeEvt.ID,
			Kind:     kind,
			IntentID: intent.ID,
			OrderSN:  intent.Metadata["order_sn"],
			Method:   cardSummary(intent.LatestCharge),
		}, true, nil
	case "charge.refunded":
		var charge stripego.Charge
		if err := json.Unmarshal(stripeEvt.Data.Raw, &charge); err != nil {
			return domain.ProviderEvent{}, false, fmt.Errorf("decode charge failed: %w", err)
		}
		if charge.PaymentIntent == nil {
			return domain.ProviderEvent{}, false, fmt.Errorf("refunded charge %s has no payment intent", charge.ID)
		}
		return domain.ProviderEvent{
			ID:       stripeEvt.ID,
			Kind:     domain.ProviderEventRefunded,
			IntentID: charge.PaymentIntent.ID,
			Method:   cardSummary(&charge),
		}, true, nil
	default:
		return domain.ProviderEvent{}, false, nil
	}
}

func cardSummary(charge *stripego.Charge) string {
	if charge == nil || charge.PaymentMethodDetails == nil || charge.PaymentMethodDetails.Card == nil {
		return ""
	}
	card := charge.PaymentMethodDetails.Card
	return fmt.Sprintf("%s %s", card.Brand, card.Last4)
}
