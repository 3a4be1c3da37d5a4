package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/tathmini/core/analytics"
)

type reportsApi struct {
	svc *analytics.Service
}

func registerReportsAPI(g *echo.Group, svc *analytics.Service) {
	api := reportsApi{svc: svc}

	rg := g.Group("/reports")
	rg.GET("/overview", api.overview)
	rg.GET("/students/:id", api.studentReport)
}

// Handlers

func (api *reportsApi) overview(ctx echo.Context) error {
	ov, err := api.svc.Overview()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ov)
}

func (api *reportsApi) studentReport(ctx echo.Context) error {
	report, err := api.svc.StudentReport(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report)
}
