package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"mentoria/internal/infra"
	"mentoria/internal/repositories"
	"mentoria/pkg/config"
)

var Module = fx.Provide(provideRedis, provideProgressStore)

func provideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	client, err := infra.InitRedis(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		infra.CloseRedis(client)
	}))
	return client, nil
}

func provideProgressStore(client *redis.Client) repositories.ProgressStore {
	return repositories.NewRedisProgressStore(client)
}
