package submission_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mentoria/internal/repositories"
	"mentoria/internal/services"
)

var Module = fx.Provide(provideSubmissionRepo, provideSubmissionService)

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepository {
	return repositories.NewSubmissionRepository(db)
}

func provideSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	resultService services.ResultServiceInterface,
) services.SubmissionServiceInterface {
	return services.NewSubmissionService(submissionRepo, resultService)
}
