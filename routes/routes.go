package routes

import (
	"github.com/Silvia-kc/Project-Germany/configs"
	"github.com/Silvia-kc/Project-Germany/controllers"
	"github.com/Silvia-kc/Project-Germany/middlewares"
	"github.com/Silvia-kc/Project-Germany/repository"
	"github.com/Silvia-kc/Project-Germany/services"
	"github.com/Silvia-kc/Project-Germany/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	carSvc := services.NewCarService(carRepo, brandRepo)
	chatSvc := services.NewChatService(chatRepo, carRepo, hub, cfg.ChatDBTimeout)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	carCtrl := controllers.NewCarController(carSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	wsHandler := ws.NewHandler(hub, chatSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Browse (public)
	r.GET("/api/cars", carCtrl.Catalog)
	r.GET("/api/brands", carCtrl.Brands)

	// Seller listings
	seller := r.Group("/api/cars", middlewares.AuthMiddleware(cfg.JWTSecret, "seller", "admin"))
	{
		seller.POST("", carCtrl.Create)
		seller.GET("/mine", carCtrl.Mine)
	}

	// Chat (any logged-in user)
	chat := r.Group("/chat", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		chat.POST("/messages", chatCtrl.SendMessage)
		chat.GET("/messages", chatCtrl.ListAll)
		chat.GET("/messages/:carId", chatCtrl.ListForCar)
	}

	// Realtime channel; token comes via ?token= on the handshake
	r.GET("/ws/chat", middlewares.WSAuthMiddleware(cfg.JWTSecret), wsHandler.HandleWebSocket)
}
