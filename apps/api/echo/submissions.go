package echoapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/submission"
)

var errUnknownStatus = errors.New("unknown submission status")

type submissionsApi struct {
	policy submission.Policy
}

func registerSubmissionsAPI(g *echo.Group, policy submission.Policy) {
	api := submissionsApi{policy: policy}

	sg := g.Group("/submissions")
	sg.POST("/grade", api.grade)
	sg.GET("/transitions", api.transition)
}

// Handlers

func (api *submissionsApi) grade(ctx echo.Context) error {
	var data submission.GradeInput
	if err := ctx.Bind(&data); err != nil {
		return pkgerrors.Wrap(err, "binding to GradeInput")
	}
	if !data.FinalStatus.Valid() {
		return core.NewValidationError(errUnknownStatus, core.FieldError{
			Field: "final_status",
			Error: errUnknownStatus.Error(),
		})
	}

	grade, err := submission.ComputeGrade(data, api.policy)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grade)
}

func (api *submissionsApi) transition(ctx echo.Context) error {
	from := submission.Status(ctx.QueryParam("from"))
	to := submission.Status(ctx.QueryParam("to"))
	if !from.Valid() || !to.Valid() {
		return core.NewValidationError(errUnknownStatus, core.FieldError{
			Field: "from/to",
			Error: errUnknownStatus.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"from":    from,
		"to":      to,
		"allowed": from.CanTransitionTo(to),
	})
}
