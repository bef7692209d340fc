package environment

import (
	"context"
	"log/slog"

	"detransport-ads-bot/internal/config"
	"detransport-ads-bot/internal/localization"
	"detransport-ads-bot/internal/storage"
	"detransport-ads-bot/internal/stories/submissions"
	"detransport-ads-bot/internal/stories/tariffs"
	"detransport-ads-bot/internal/telegram"
	"detransport-ads-bot/internal/telegram/cmds"
	"detransport-ads-bot/internal/telegram/flows/submitad"
	"detransport-ads-bot/internal/telegram/states"
	"detransport-ads-bot/internal/worker"

	"github.com/pkg/errors"
)

type Services struct {
	TelegramRouter    *telegram.Router
	SubmissionService *submissions.Service
	WorkerService     *worker.Service
}

func newServices(ctx context.Context, clients *Clients, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	var s Services

	if clients.TelegramBot == nil {
		return nil, errors.New("telegram bot не инициализирован")
	}

	// Создаем реальный storage
	storageImpl := storage.New(clients.SQLiteDB.DB)
	if err := storageImpl.InitSchema(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to init storage schema")
	}

	// Создаем сервисы
	submissionService := submissions.NewService(storageImpl, nil)
	tariffService := tariffs.NewService()
	s.SubmissionService = submissionService

	// Создаем StateManager
	stateManager := states.NewManager()

	// Создаем AdminChecker
	adminChecker := telegram.NewAdminChecker(&cfg.Telegram)

	// Создаем submitAdHandler - клиент уже реализует botApi интерфейс
	submitAdHandler := submitad.NewHandler(
		clients.TelegramBot,
		stateManager,
		tariffService,
		submissionService,
		clients.TelegramBot,
		cfg.Payment.Card,
		cfg.Payment.IBAN,
		logger,
	)

	// Создаем команды модерации
	moderationCommands := cmds.NewModerationCommands(
		clients.TelegramBot,
		adminChecker,
		submissionService,
		logger,
	)

	// Создаем роутер
	s.TelegramRouter = telegram.NewRouter(
		clients.TelegramBot,
		stateManager,
		tariffService,
		submitAdHandler,
		moderationCommands,
		logger,
	)

	// Создаем localizer для воркеров
	localizer, err := localization.NewService()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create localization service")
	}

	// Создаем worker service
	s.WorkerService = worker.NewService(
		storageImpl,
		clients.TelegramBot,
		localizer,
		cfg.Telegram.AdminID,
		logger,
	)

	return &s, nil
}
