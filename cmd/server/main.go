package main

import (
	"github.com/sirupsen/logrus"

	"goldchip_backend/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
