package quiz_fx

import (
	"time"

	"go.uber.org/fx"

	"mentoria/internal/repositories"
	"mentoria/internal/services"
)

// autoAdvanceDelay debounces the advance scheduled after answering a choice
// or question slide.
const autoAdvanceDelay = 400 * time.Millisecond

var Module = fx.Provide(provideSlideService, provideQuizService)

func provideSlideService() services.SlideServiceInterface {
	return services.NewSlideService()
}

func provideQuizService(
	slideService services.SlideServiceInterface,
	progressStore repositories.ProgressStore,
	submissionService services.SubmissionServiceInterface,
) services.QuizServiceInterface {
	return services.NewQuizService(slideService, progressStore, submissionService, autoAdvanceDelay)
}
