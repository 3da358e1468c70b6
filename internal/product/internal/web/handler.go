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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/voltmart/internal/product/internal/domain"
	"github.com/ecodeclub/voltmart/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler serves the public storefront catalog. Browsing requires no login.
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.W(h.List))
	g.POST("/detail", ginx.B[SKUReq](h.Detail))
	g.POST("/category/list", ginx.W(h.ListCategories))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	products, err := h.svc.ListActive(ctx.Request.Context())
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

func (h *Handler) Detail(ctx *ginx.Context, req SKUReq) (ginx.Result, error) {
	p, err := h.svc.FindBySKU(ctx.Request.Context(), req.SKU)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *Handler) ListCategories(ctx *ginx.Context) (ginx.Result, error) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CategoryListResp{
			Categories: slice.Map(categories, func(idx int, src domain.Category) Category {
				return newCategory(src)
			}),
		},
	}, nil
}
