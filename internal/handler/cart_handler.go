package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	cartCookieName = "cart_session"
	cartHeaderName = "X-Cart-Session"
)

// /cart のHTTP。カートはセッションIDごとにサーバーのメモリで持つ。
type CartHandler struct {
	uc           *usecase.CartUsecase
	secureCookie bool
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, secureCookie bool) *CartHandler {
	return &CartHandler{uc: uc, secureCookie: secureCookie}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CartOpenRequest struct {
	Open bool `json:"open"`
}

type CheckoutRequest struct {
	Customer string `json:"customer"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.PATCH("", h.setOpen)
	g.DELETE("", h.clear)
	g.POST("/items", h.addItem)
	g.DELETE("/items/:product_id", h.removeItem)
	g.POST("/checkout", h.checkout)
}

func (h *CartHandler) getCart(c echo.Context) error {
	sid := h.session(c)
	return c.JSON(http.StatusOK, h.uc.GetCart(c.Request().Context(), sid))
}

func (h *CartHandler) addItem(c echo.Context) error {
	sid := h.session(c)

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.AddItem(c.Request().Context(), sid, usecase.AddCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	sid := h.session(c)

	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return badRequest(c, "invalid product_id")
	}
	return c.JSON(http.StatusOK, h.uc.RemoveItem(c.Request().Context(), sid, productID))
}

func (h *CartHandler) clear(c echo.Context) error {
	sid := h.session(c)
	return c.JSON(http.StatusOK, h.uc.Clear(c.Request().Context(), sid))
}

// カートパネルの開閉
func (h *CartHandler) setOpen(c echo.Context) error {
	sid := h.session(c)

	var req CartOpenRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	return c.JSON(http.StatusOK, h.uc.SetOpen(c.Request().Context(), sid, req.Open))
}

func (h *CartHandler) checkout(c echo.Context) error {
	sid := h.session(c)

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	customer := req.Customer
	if customer == "" {
		customer = req.Name
	}

	o, err := h.uc.Checkout(c.Request().Context(), sid, usecase.CheckoutInput{
		Customer: customer,
		Email:    req.Email,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

// ヘッダ → cookie の順に探し、無ければ発行してcookieに入れる
func (h *CartHandler) session(c echo.Context) string {
	sid := strings.TrimSpace(c.Request().Header.Get(cartHeaderName))
	if sid == "" {
		if ck, err := c.Cookie(cartCookieName); err == nil {
			sid = strings.TrimSpace(ck.Value)
		}
	}
	if sid == "" {
		sid = uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     cartCookieName,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		})
	}
	c.Response().Header().Set(cartHeaderName, sid)
	return sid
}
