package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/moderation"
	"github.com/trezcool/tathmini/core/sentiment"
)

type analysisApi struct {
	analyzer  *sentiment.Analyzer
	moderator *moderation.Moderator
}

func registerAnalysisAPI(g *echo.Group, analyzer *sentiment.Analyzer, moderator *moderation.Moderator) {
	api := analysisApi{analyzer: analyzer, moderator: moderator}

	ag := g.Group("/analysis")
	ag.POST("/sentiment", api.sentiment)
	ag.POST("/moderation", api.moderation)
}

type analysisRequest struct {
	Text string `json:"text" validate:"required"`
}

func (r *analysisRequest) Validate() error {
	r.Text = core.CleanString(r.Text)
	return core.Validate.Struct(r)
}

// Handlers

func (api *analysisApi) sentiment(ctx echo.Context) error {
	var data analysisRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to analysisRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.analyzer.Analyze(data.Text))
}

func (api *analysisApi) moderation(ctx echo.Context) error {
	var data analysisRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to analysisRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	verdict := api.moderator.Moderate(data.Text)
	if err := verdict.BlockedError(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, verdict)
}
