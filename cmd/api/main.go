package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"microfin-backoffice/internal/adapter/authz"
	httpadp "microfin-backoffice/internal/adapter/http"
	"microfin-backoffice/internal/adapter/middleware"
	"microfin-backoffice/internal/adapter/repository/mysql"
	"microfin-backoffice/internal/config"
	"microfin-backoffice/internal/infrastructure/cache"
	"microfin-backoffice/internal/infrastructure/db"
	approvalUC "microfin-backoffice/internal/usecase/approval"
	"microfin-backoffice/internal/usecase/application"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	drafts := mysql.NewDraftRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	authorizer := authz.NewStatic(os.Getenv("APPROVER_PERMISSIONS"), os.Getenv("APPROVER_ROLES"))

	apps := application.NewUsecase(drafts, customers, loans, guow)
	approvals := approvalUC.NewUsecase(loans, guow, authorizer)

	h := httpadp.NewHandler()
	draftH := httpadp.NewDraftHandler(apps)
	loanH := httpadp.NewLoanHandler(apps, approvals)
	approvalH := httpadp.NewApprovalHandler(approvals)
	customerH := httpadp.NewCustomerHandler(apps)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.PUT("/drafts/:draft_id", draftH.SaveDraft)
	e.GET("/drafts", draftH.ListDrafts)
	e.GET("/drafts/:draft_id", draftH.LoadDraft)
	e.DELETE("/drafts/:draft_id", draftH.DeleteDraft)

	e.POST("/loans", loanH.SubmitLoan)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:contract_number", loanH.GetLoan)
	e.POST("/loans/:contract_number/resubmit", loanH.ResubmitLoan)
	e.POST("/loans/:contract_number/approve", approvalH.Approve)
	e.POST("/loans/:contract_number/send-back", approvalH.SendBack)

	e.POST("/customers/:customer_id/group", customerH.AssignGroup)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
