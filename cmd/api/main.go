package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loan-escrow-service/internal/adapter/http"
	"loan-escrow-service/internal/adapter/metrics"
	appmw "loan-escrow-service/internal/adapter/middleware"
	"loan-escrow-service/internal/adapter/repository/mysql"
	"loan-escrow-service/internal/config"
	escrowDomain "loan-escrow-service/internal/domain/escrow"
	"loan-escrow-service/internal/domain/ledger"
	"loan-escrow-service/internal/infrastructure/cache"
	"loan-escrow-service/internal/infrastructure/db"
	accountUC "loan-escrow-service/internal/usecase/account"
	escrowUC "loan-escrow-service/internal/usecase/escrow"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&escrowDomain.Escrow{}, &ledger.Account{}, &ledger.Event{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	escrows := mysql.NewEscrowRepository(gdb)
	accounts := mysql.NewAccountRepository(gdb)
	events := mysql.NewEventRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	m := metrics.New()
	h := httpadp.NewHandler()
	eh := httpadp.NewEscrowHandler(escrowUC.NewUsecase(escrows, accounts, events, uow), m)
	ah := httpadp.NewAccountHandler(accountUC.NewUsecase(accounts))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	e.POST("/accounts", ah.OpenAccount)
	e.GET("/accounts/:account_id", ah.GetAccount)

	e.POST("/escrows", eh.CreateEscrow, idemp)
	e.GET("/escrows/:escrow_id", eh.GetEscrow)
	e.GET("/escrows/:escrow_id/events", eh.ListEvents)
	e.POST("/escrows/:escrow_id/fund", eh.FundEscrow, idemp)
	e.POST("/escrows/:escrow_id/repay", eh.RepayEscrow, idemp)
	e.POST("/escrows/:escrow_id/withdraw", eh.WithdrawEscrow, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
