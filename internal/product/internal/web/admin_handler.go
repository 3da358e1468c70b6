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
	"errors"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/voltmart/internal/audit"
	"github.com/ecodeclub/voltmart/internal/product/internal/domain"
	"github.com/ecodeclub/voltmart/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

// defaultLowStockThreshold matches the reorder point the store runs with.
const defaultLowStockThreshold = 10

type AdminHandler struct {
	svc      service.Service
	auditSvc audit.Service
}

func NewAdminHandler(svc service.Service, auditSvc audit.Service) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		auditSvc: auditSvc,
	}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.BS[ProductSaveReq](h.Save))
	g.POST("/list", ginx.S(h.List))
	g.POST("/low-stock", ginx.BS[LowStockReq](h.LowStock))
	g.POST("/category/save", ginx.BS[CategorySaveReq](h.SaveCategory))
}

// Save creates the product when the id is zero and updates it otherwise.
func (h *AdminHandler) Save(ctx *ginx.Context, req ProductSaveReq, sess session.Session) (ginx.Result, error) {
	p := req.Product.toDomain()
	if p.ID == 0 {
		id, err := h.svc.Create(ctx.Request.Context(), p)
		if err != nil {
			return h.saveErrorResult(err)
		}
		p.ID = id
		h.logChange(ctx, sess, "product.create", p.ID, nil, productSnapshot(p))
		return ginx.Result{Data: ProductSaveResp{ID: id}}, nil
	}
	before, err := h.svc.FindByID(ctx.Request.Context(), p.ID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	if err = h.svc.Update(ctx.Request.Context(), p); err != nil {
		return h.saveErrorResult(err)
	}
	h.logChange(ctx, sess, "product.update", p.ID, productSnapshot(before), productSnapshot(p))
	return ginx.Result{Data: ProductSaveResp{ID: p.ID}}, nil
}

func (h *AdminHandler) saveErrorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrDuplicateSKU):
		return duplicateSKUResult, nil
	case errors.Is(err, service.ErrInvalidProduct):
		return invalidProductResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) List(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	products, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductListResp{
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return newProduct(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) LowStock(ctx *ginx.Context, req LowStockReq, _ session.Session) (ginx.Result, error) {
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	products, err := h.svc.FindLowStock(ctx.Request.Context(), threshold)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductListResp{
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return newProduct(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) SaveCategory(ctx *ginx.Context, req CategorySaveReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.SaveCategory(ctx.Request.Context(), domain.Category{
		ID:        req.Category.ID,
		Name:      req.Category.Name,
		Slug:      req.Category.Slug,
		SortOrder: req.Category.SortOrder,
		Active:    req.Category.Active,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSlug) {
			return duplicateCategoryResult, nil
		}
		return systemErrorResult, err
	}
	h.logChange(ctx, sess, "category.save", id, nil, map[string]any{
		"name": req.Category.Name,
		"slug": req.Category.Slug,
	})
	return ginx.Result{Data: ProductSaveResp{ID: id}}, nil
}

func (h *AdminHandler) logChange(ctx *ginx.Context, sess session.Session,
	action string, targetID int64, before, after map[string]any) {
	h.auditSvc.Log(ctx, audit.AuditLog{
		ActorID:    sess.Claims().Uid,
		Action:     action,
		TargetType: audit.TargetTypeProduct,
		TargetID:   strconv.FormatInt(targetID, 10),
		Before:     before,
		After:      after,
		IP:         ctx.ClientIP(),
		UserAgent:  ctx.GetHeader("User-Agent"),
	})
}

func productSnapshot(p domain.Product) map[string]any {
	return map[string]any{
		"sku":        p.SKU,
		"name":       p.Name,
		"priceCents": p.PriceCents,
		"stock":      p.Stock,
		"featured":   p.Featured,
		"active":     p.Active,
	}
}
