package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/studycrate/studycrate/internal/adapter/config"
	"github.com/studycrate/studycrate/internal/core/port"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	packageHandler *PackageHandler,
	purchaseHandler *PurchaseHandler,
	balanceHandler *BalanceHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := authCheck(tokenService, NewHandler(logger))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)

			balance := user.Group("/balance")
			{
				balance.Use(auth)
				balance.GET("", balanceHandler.UserBalance)
				balance.POST("/deposit", balanceHandler.Deposit)
			}

			orders := user.Group("/orders")
			{
				orders.Use(auth)
				orders.GET("", purchaseHandler.ListOrders)
			}

			mine := user.Group("/packages")
			{
				mine.Use(auth)
				mine.GET("", packageHandler.ListMyPackages)
			}
		}

		packages := api.Group("/packages")
		{
			packages.Use(auth)
			packages.POST("", packageHandler.CreatePackage)
			packages.GET("", packageHandler.SearchPackages)
			packages.GET("/:id", packageHandler.GetPackage)
			packages.POST("/:id/files", packageHandler.UploadFile)
			packages.GET("/:id/files/:fileID", packageHandler.DownloadFile)
			packages.POST("/:id/purchase", purchaseHandler.PurchasePackage)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
