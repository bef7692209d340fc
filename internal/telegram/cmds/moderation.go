package cmds

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"detransport-ads-bot/internal/stories/submissions"
	"detransport-ads-bot/internal/telegram/messages"
)

type botApi interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type adminChecker interface {
	IsAdmin(telegramID int64) bool
}

type submissionService interface {
	ListPending(ctx context.Context) ([]*submissions.Submission, error)
	Approve(ctx context.Context, id int64) (*submissions.Submission, error)
	Disable(ctx context.Context, id int64) (*submissions.Submission, error)
}

// ModerationCommands — админские команды жизненного цикла заявок:
// /list_pending, /approve <id>, /disable <id>. Не-админ получает отказ до
// любого обращения к хранилищу.
type ModerationCommands struct {
	bot               botApi
	adminChecker      adminChecker
	submissionService submissionService
	logger            *slog.Logger
}

func NewModerationCommands(
	bot botApi,
	ac adminChecker,
	ss submissionService,
	logger *slog.Logger,
) *ModerationCommands {
	return &ModerationCommands{
		bot:               bot,
		adminChecker:      ac,
		submissionService: ss,
		logger:            logger,
	}
}

func (c *ModerationCommands) ListPending(ctx context.Context, userID, chatID int64) error {
	if !c.adminChecker.IsAdmin(userID) {
		return c.sendText(chatID, messages.AccessDenied)
	}

	pending, err := c.submissionService.ListPending(ctx)
	if err != nil {
		c.logger.Error("Failed to list pending submissions", "error", err)
		return c.sendText(chatID, messages.Error)
	}

	if len(pending) == 0 {
		return c.sendText(chatID, messages.NoPending)
	}

	items := make([]string, 0, len(pending))
	for _, sub := range pending {
		items = append(items, fmt.Sprintf(messages.PendingListItem,
			sub.ID, sub.CustomerName, sub.Title))
	}

	return c.sendText(chatID, strings.Join(items, "\n\n"))
}

func (c *ModerationCommands) Approve(ctx context.Context, userID, chatID int64, args string) error {
	if !c.adminChecker.IsAdmin(userID) {
		return c.sendText(chatID, messages.AccessDenied)
	}

	id, ok := parseID(args)
	if !ok {
		return c.sendText(chatID, messages.UsageApprove)
	}

	sub, err := c.submissionService.Approve(ctx, id)
	if err != nil {
		c.logger.Error("Failed to approve submission", "submission_id", id, "error", err)
		return c.sendText(chatID, messages.Error)
	}
	if sub == nil {
		return c.sendText(chatID, fmt.Sprintf(messages.NotFound, id))
	}

	return c.sendText(chatID, fmt.Sprintf(messages.Approved,
		sub.ID,
		sub.StartDate.Format("02.01.2006"),
		sub.EndDate.Format("02.01.2006")))
}

func (c *ModerationCommands) Disable(ctx context.Context, userID, chatID int64, args string) error {
	if !c.adminChecker.IsAdmin(userID) {
		return c.sendText(chatID, messages.AccessDenied)
	}

	id, ok := parseID(args)
	if !ok {
		return c.sendText(chatID, messages.UsageDisable)
	}

	sub, err := c.submissionService.Disable(ctx, id)
	if err != nil {
		c.logger.Error("Failed to disable submission", "submission_id", id, "error", err)
		return c.sendText(chatID, messages.Error)
	}
	if sub == nil {
		return c.sendText(chatID, fmt.Sprintf(messages.NotFound, id))
	}

	return c.sendText(chatID, fmt.Sprintf(messages.Disabled, sub.ID))
}

func (c *ModerationCommands) sendText(chatID int64, text string) error {
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// parseID принимает только положительное целое число.
func parseID(args string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
