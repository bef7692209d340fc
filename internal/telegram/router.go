package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"detransport-ads-bot/internal/stories/tariffs"
	"detransport-ads-bot/internal/telegram/cmds"
	"detransport-ads-bot/internal/telegram/flows/submitad"
	"detransport-ads-bot/internal/telegram/messages"
	"detransport-ads-bot/internal/telegram/states"
)

const submitAdStatePrefix = "sa_"

type Router struct {
	bot          botApi
	stateManager stateManager
	tariffs      tariffService

	// Handlers
	submitAdHandler    *submitad.Handler
	moderationCommands *cmds.ModerationCommands

	logger *slog.Logger
}

type botApi interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type stateManager interface {
	GetState(userID int64) states.State
	Clear(userID int64)
}

type tariffService interface {
	List() []tariffs.Tariff
}

func NewRouter(
	bot botApi,
	sm stateManager,
	ts tariffService,
	submitAdHandler *submitad.Handler,
	moderationCommands *cmds.ModerationCommands,
	logger *slog.Logger,
) *Router {
	return &Router{
		bot:                bot,
		stateManager:       sm,
		tariffs:            ts,
		submitAdHandler:    submitAdHandler,
		moderationCommands: moderationCommands,
		logger:             logger,
	}
}

// Route обрабатывает одно обновление. Вызывается последовательно из главного
// цикла, поэтому сообщения одного пользователя никогда не перемежаются.
func (r *Router) Route(update *tgbotapi.Update) error {
	ctx := context.Background()

	userID := extractUserID(update)
	if userID == 0 {
		return nil // Некорректный update
	}
	chatID := extractChatID(update)

	// Команды имеют приоритет над любым флоу
	if update.Message != nil && update.Message.IsCommand() {
		return r.handleCommand(ctx, update, userID, chatID)
	}

	// Кнопки главного меню и тарифов
	if update.CallbackQuery != nil {
		callbackData := update.CallbackQuery.Data
		switch {
		case callbackData == "MENU_CREATE":
			r.answerCallback(update, "")
			return r.submitAdHandler.Start(userID, chatID)
		case callbackData == "MENU_LATER":
			r.answerCallback(update, "")
			r.stateManager.Clear(userID)
			return r.sendText(chatID, messages.WelcomeLater)
		case strings.HasPrefix(callbackData, "TARIFF_"):
			return r.submitAdHandler.HandleTariffCallback(update)
		}

		r.answerCallback(update, "")
		return nil
	}

	// Активный диалог оформления рекламы
	state := r.stateManager.GetState(userID)
	if strings.HasPrefix(string(state), submitAdStatePrefix) {
		return r.submitAdHandler.Handle(update, state)
	}

	// Нет активной сессии — это не ошибка, подсказываем начать заново
	return r.sendText(chatID, messages.NoSession)
}

func (r *Router) handleCommand(ctx context.Context, update *tgbotapi.Update, userID, chatID int64) error {
	switch update.Message.Command() {
	case "start":
		// /start всегда сбрасывает прежнюю сессию
		r.stateManager.Clear(userID)
		return r.sendWelcome(chatID)
	case "cancel":
		// Отмена идемпотентна: подтверждаем даже если сессии не было
		r.stateManager.Clear(userID)
		return r.sendText(chatID, messages.Cancelled)
	case "myid":
		return r.sendText(chatID, fmt.Sprintf(messages.MyID, userID))
	case "list_pending":
		return r.moderationCommands.ListPending(ctx, userID, chatID)
	case "approve":
		return r.moderationCommands.Approve(ctx, userID, chatID, update.Message.CommandArguments())
	case "disable":
		return r.moderationCommands.Disable(ctx, userID, chatID, update.Message.CommandArguments())
	default:
		return r.sendText(chatID, messages.NoSession)
	}
}

func (r *Router) sendWelcome(chatID int64) error {
	var lines []string
	for _, t := range r.tariffs.List() {
		lines = append(lines, t.Label())
	}

	text := fmt.Sprintf("%s\n\n%s\n%s",
		messages.WelcomeTitle, messages.TariffsHeader, strings.Join(lines, "\n"))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonCreateAd, "MENU_CREATE"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonLater, "MENU_LATER"),
		),
	)

	_, err := r.bot.Send(msg)
	return err
}

// SetupBotCommands регистрирует команды в меню бота
func (r *Router) SetupBotCommands() error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Тарифи та оформлення реклами"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Скасувати оформлення"},
		tgbotapi.BotCommand{Command: "myid", Description: "Показати ваш ID"},
	)

	_, err := r.bot.Request(commands)
	return err
}

func (r *Router) answerCallback(update *tgbotapi.Update, text string) {
	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, text)
	if _, err := r.bot.Request(callback); err != nil {
		r.logger.Error("Failed to answer callback query", "error", err)
	}
}

func (r *Router) sendText(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func extractUserID(update *tgbotapi.Update) int64 {
	if update.Message != nil && update.Message.From != nil {
		return update.Message.From.ID
	}
	if update.CallbackQuery != nil {
		return update.CallbackQuery.From.ID
	}
	return 0
}

func extractChatID(update *tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}
