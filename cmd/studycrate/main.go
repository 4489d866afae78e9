package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/studycrate/studycrate/internal/adapter/auth"
	"github.com/studycrate/studycrate/internal/adapter/config"
	"github.com/studycrate/studycrate/internal/adapter/handler/http"
	"github.com/studycrate/studycrate/internal/adapter/logger"
	"github.com/studycrate/studycrate/internal/adapter/storage"
	"github.com/studycrate/studycrate/internal/adapter/storage/filestore"
	"github.com/studycrate/studycrate/internal/adapter/storage/repository"
	"github.com/studycrate/studycrate/internal/core/domain"
	"github.com/studycrate/studycrate/internal/core/service"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}
	repo.OnSettle(func(order *domain.Order) {
		log.Info("order settled",
			zap.Uint64("order", order.ID),
			zap.Uint64("buyer", order.BuyerID),
			zap.Uint64("package", order.PackageID))
	})

	files, err := filestore.NewDiskStore(conf.FileStore, log.Named("FileStore"))
	if err != nil {
		log.Error("file store creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, tokenService, files, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	packageHandler, err := http.NewPackageHandler(svc, log.Named("Package handler"))
	if err != nil {
		log.Error("package handler creating error", zap.Error(err))
		return
	}
	purchaseHandler, err := http.NewPurchaseHandler(svc, log.Named("Purchase handler"))
	if err != nil {
		log.Error("purchase handler creating error", zap.Error(err))
		return
	}
	balanceHandler, err := http.NewBalanceHandler(svc, log.Named("Balance handler"))
	if err != nil {
		log.Error("balance handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		userHandler, packageHandler, purchaseHandler, balanceHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
