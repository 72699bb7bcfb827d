package handler

import (
	"go.mongodb.org/mongo-driver/mongo"

	"rebuy/internal/infrastructure/storage"
	"rebuy/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	adminHandler     *AdminHandler
	stockHandler     *StockHandler
	productHandler   *ProductHandler
	cartHandler      *CartHandler
	checkoutHandler  *CheckoutHandler
	orderHandler     *OrderHandler
	paymentHandler   *PaymentHandler
	reorderHandler   *ReorderHandler
	offerHandler     *OfferHandler
	feedbackHandler  *FeedbackHandler
	financeHandler   *FinanceHandler
	dashboardHandler *DashboardHandler
	healthHandler    *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	adminUseCase *usecase.AdminUseCase,
	stockUseCase *usecase.StockUseCase,
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	orderUseCase *usecase.OrderUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	reorderUseCase *usecase.ReorderUseCase,
	offerUseCase *usecase.OfferUseCase,
	feedbackUseCase *usecase.FeedbackUseCase,
	financeUseCase *usecase.FinanceUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
	uploads *storage.LocalStorage,
	mongoClient *mongo.Client,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	stockHandler = NewStockHandler(stockUseCase)
	productHandler = NewProductHandler(productUseCase, uploads)
	cartHandler = NewCartHandler(cartUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase, uploads)
	orderHandler = NewOrderHandler(orderUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	reorderHandler = NewReorderHandler(reorderUseCase)
	offerHandler = NewOfferHandler(offerUseCase)
	feedbackHandler = NewFeedbackHandler(feedbackUseCase)
	financeHandler = NewFinanceHandler(financeUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
	healthHandler = NewHealthHandler(mongoClient)
}

func GetAuthHandler() *AuthHandler           { return authHandler }
func GetUserHandler() *UserHandler           { return userHandler }
func GetAdminHandler() *AdminHandler         { return adminHandler }
func GetStockHandler() *StockHandler         { return stockHandler }
func GetProductHandler() *ProductHandler     { return productHandler }
func GetCartHandler() *CartHandler           { return cartHandler }
func GetCheckoutHandler() *CheckoutHandler   { return checkoutHandler }
func GetOrderHandler() *OrderHandler         { return orderHandler }
func GetPaymentHandler() *PaymentHandler     { return paymentHandler }
func GetReorderHandler() *ReorderHandler     { return reorderHandler }
func GetOfferHandler() *OfferHandler         { return offerHandler }
func GetFeedbackHandler() *FeedbackHandler   { return feedbackHandler }
func GetFinanceHandler() *FinanceHandler     { return financeHandler }
func GetDashboardHandler() *DashboardHandler { return dashboardHandler }
func GetHealthHandler() *HealthHandler       { return healthHandler }
