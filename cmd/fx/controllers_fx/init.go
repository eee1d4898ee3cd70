package controllers_fx

import (
	"go.uber.org/fx"

	"mentoria/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewQuizController,
	controllers.NewResultController,
)
