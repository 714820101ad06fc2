package api

import (
	"net/http"
	"strconv"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewCartHandler(orderUseCase usecase.OrderUseCase) *CartHandler {
	return &CartHandler{orderUseCase: orderUseCase}
}

// @Summary List products
// @Tags shop
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *CartHandler) ListProducts(c *gin.Context) {
	products, err := h.orderUseCase.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(products))
}

// @Summary Get cart
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	view, err := h.orderUseCase.GetCart(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add to cart
// @Tags shop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.orderUseCase.AddToCart(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to add to cart", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove from cart
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Param productID path int true "Product ID"
// @Success 204
// @Router /cart/items/{productID} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	if err := h.orderUseCase.RemoveFromCart(c.Request.Context(), userID, productID); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to remove from cart", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout
// @Description Place an order from the cart at current prices
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	placed, err := h.orderUseCase.Checkout(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Checkout failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(placed))
}

// @Summary List own orders
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *CartHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	orders, err := h.orderUseCase.ListOrders(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}
