package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/report-server/internal/handlers/v1/category"
	"github.com/carson-networks/report-server/internal/handlers/v1/report"
	"github.com/carson-networks/report-server/internal/handlers/v1/status"
	"github.com/carson-networks/report-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/operator"
	"github.com/carson-networks/report-server/internal/service"
	"github.com/carson-networks/report-server/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Handler builds the router with every route registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Report Server", "1.0.0"))
	api.UseMiddleware(logging.NewHumaMiddleware(r.Logger))

	report.NewGetReportHandler(r.Service.Report).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Operator).Register(api)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(api)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(api)
	category.NewListCategoriesHandler(r.Service.Category).Register(api)
	category.NewGetCategoryHandler(r.Service.Category).Register(api)
	category.NewCreateCategoryHandler(r.Operator).Register(api)
	category.NewUpdateCategoryHandler(r.Operator).Register(api)
	category.NewDeleteCategoryHandler(r.Operator).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		r.Logger.Info("HttpServer.Serve.shutting down")
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	return err
}
