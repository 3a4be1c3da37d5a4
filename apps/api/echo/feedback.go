package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tathmini/core/feedback"
	"github.com/trezcool/tathmini/core/moderation"
)

type feedbackApi struct {
	svc       *feedback.Service
	moderator *moderation.Moderator
}

func registerFeedbackAPI(g *echo.Group, svc *feedback.Service, moderator *moderation.Moderator) {
	api := feedbackApi{svc: svc, moderator: moderator}

	fg := g.Group("/feedback")
	fg.POST("", api.create)
	fg.GET("/:id", api.retrieve)
	fg.PUT("/:id/remarks", api.updateRemarks)
	fg.DELETE("/:id", api.destroy)
	fg.GET("/students/:studentID", api.queryByStudent)
	fg.GET("/students/:studentID/aggregate", api.aggregate)
}

// Handlers

func (api *feedbackApi) create(ctx echo.Context) error {
	var data feedback.NewSignal
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSignal")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	// remarks go through moderation before anything is stored
	if err := api.moderator.Moderate(data.Remarks).BlockedError(); err != nil {
		return err
	}

	sig, err := api.svc.Record(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sig)
}

func (api *feedbackApi) retrieve(ctx echo.Context) error {
	sig, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sig)
}

func (api *feedbackApi) updateRemarks(ctx echo.Context) error {
	var data feedback.UpdateRemarks
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRemarks")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.moderator.Moderate(data.Remarks).BlockedError(); err != nil {
		return err
	}

	sig, err := api.svc.UpdateRemarks(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sig)
}

func (api *feedbackApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *feedbackApi) queryByStudent(ctx echo.Context) error {
	sigs, err := api.svc.QueryByStudent(ctx.Param("studentID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sigs)
}

func (api *feedbackApi) aggregate(ctx echo.Context) error {
	agg, err := api.svc.Aggregate(ctx.Param("studentID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, agg)
}
