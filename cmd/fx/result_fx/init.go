package result_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mentoria/internal/repositories"
	"mentoria/internal/services"
	"mentoria/pkg/config"
	"mentoria/pkg/utils"
)

var Module = fx.Provide(provideResultRepo, provideReportClient, provideResultService)

func provideResultRepo(db *gorm.DB) repositories.ResultRepository {
	return repositories.NewResultRepository(db)
}

func provideReportClient(cfg *config.Config) (utils.ReportClientInterface, error) {
	return utils.NewReportClient(cfg.AIProvider, cfg.AIAPIKey, cfg.ModelName)
}

func provideResultService(
	submissionRepo repositories.SubmissionRepository,
	resultRepo repositories.ResultRepository,
	aiClient utils.ReportClientInterface,
) services.ResultServiceInterface {
	return services.NewResultService(submissionRepo, resultRepo, aiClient)
}
