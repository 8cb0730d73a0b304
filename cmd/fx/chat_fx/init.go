package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelog/internal/repositories"
	"travelog/internal/services"
	"travelog/pkg/middleware"
	"travelog/pkg/utils"
)

var Module = fx.Provide(
	provideChatRepo,
	provideAIClient,
	provideChatService,
	provideRateLimiter,
)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideAIClient(cfg *utils.Config) (utils.AIClientInterface, error) {
	return utils.NewAIClient(cfg)
}

func provideChatService(
	chatRepo repositories.ChatRepository,
	aiClient utils.AIClientInterface,
	cfg *utils.Config,
) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, aiClient, cfg)
}

func provideRateLimiter(cfg *utils.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg)
}
