package app

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"goldchip_backend/internal/config"
	"goldchip_backend/internal/database"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

func (a *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		logrus.WithError(err).Warn("no .env file loaded, relying on process environment")
	}
	a.initServiceProvider()

	ctx := context.Background()

	if err := database.MigrateUp(a.ServiceProvider.PgConfig().DSN()); err != nil {
		return err
	}

	r := a.ServiceProvider.Router(ctx)

	logrus.WithField("address", a.ServiceProvider.HTTPCfg().Address()).Info("starting server")
	return http.ListenAndServe(a.ServiceProvider.HTTPCfg().Address(), r)
}
