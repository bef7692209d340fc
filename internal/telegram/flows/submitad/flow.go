package submitad

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"detransport-ads-bot/internal/stories/submissions"
	"detransport-ads-bot/internal/telegram/flows"
	"detransport-ads-bot/internal/telegram/messages"
	"detransport-ads-bot/internal/telegram/states"
)

// Лимиты длин текстовых шагов, в символах. У ссылки лимита нет, вместо него
// проверка формы URL.
const (
	maxTitleLen   = 60
	maxDescLen    = 200
	maxContactLen = 120
	maxNameLen    = 60
)

type Handler struct {
	bot               botApi
	stateManager      stateManager
	tariffService     tariffService
	submissionService submissionService
	files             fileResolver
	paymentCard       string
	paymentIBAN       string
	logger            *slog.Logger
}

func NewHandler(
	bot botApi,
	sm stateManager,
	ts tariffService,
	ss submissionService,
	files fileResolver,
	paymentCard string,
	paymentIBAN string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bot:               bot,
		stateManager:      sm,
		tariffService:     ts,
		submissionService: ss,
		files:             files,
		paymentCard:       paymentCard,
		paymentIBAN:       paymentIBAN,
		logger:            logger,
	}
}

// Start начинает флоу оформления рекламы: сбрасывает прежнюю сессию и
// показывает выбор тарифа.
func (h *Handler) Start(userID, chatID int64) error {
	flowData := &flows.SubmitAdFlowData{}
	h.stateManager.SetState(userID, states.SubmitAdWaitTariff, flowData)

	msg := tgbotapi.NewMessage(chatID, messages.ChooseTariff)
	msg.ReplyMarkup = h.tariffsKeyboard()

	_, err := h.bot.Send(msg)
	return err
}

// HandleTariffCallback обрабатывает нажатие кнопки тарифа. Неизвестный
// payload и нажатие вне шага выбора тарифа игнорируются.
func (h *Handler) HandleTariffCallback(update *tgbotapi.Update) error {
	if update.CallbackQuery == nil {
		return nil
	}

	userID := update.CallbackQuery.From.ID
	chatID := update.CallbackQuery.Message.Chat.ID

	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
	_, _ = h.bot.Request(callback)

	if h.stateManager.GetState(userID) != states.SubmitAdWaitTariff {
		return nil
	}

	tariff := h.tariffService.ByCallbackData(update.CallbackQuery.Data)
	if tariff == nil {
		return nil
	}

	data, err := h.stateManager.GetSubmitAdData(userID)
	if err != nil {
		return h.sendText(chatID, messages.NoSession)
	}

	data.TariffDays = tariff.Days
	data.PriceUAH = tariff.PriceUAH
	h.stateManager.SetState(userID, states.SubmitAdWaitTitle, data)

	return h.sendText(chatID, fmt.Sprintf(messages.TariffChosen, tariff.Days, tariff.PriceUAH))
}

// Handle обрабатывает текущее состояние
func (h *Handler) Handle(update *tgbotapi.Update, state states.State) error {
	ctx := context.Background()

	switch state {
	case states.SubmitAdWaitTariff:
		// На этом шаге принимаются только кнопки тарифов.
		return h.sendText(extractChatID(update), messages.ChooseTariff)
	case states.SubmitAdWaitTitle:
		return h.handleTitleInput(update)
	case states.SubmitAdWaitDescription:
		return h.handleDescriptionInput(update)
	case states.SubmitAdWaitLink:
		return h.handleLinkInput(update)
	case states.SubmitAdWaitContact:
		return h.handleContactInput(update)
	case states.SubmitAdWaitName:
		return h.handleNameInput(update)
	case states.SubmitAdWaitMedia:
		return h.handleMediaInput(ctx, update)
	case states.SubmitAdWaitPaymentProof:
		return h.handlePaymentProofInput(ctx, update)
	default:
		return fmt.Errorf("unknown submit ad state: %s", state)
	}
}

func (h *Handler) handleTitleInput(update *tgbotapi.Update) error {
	userID, chatID := extractUserID(update), extractChatID(update)

	text, ok := textInput(update)
	if !ok {
		return h.sendText(chatID, messages.NeedText)
	}
	if text == "" {
		return h.sendText(chatID, messages.TextEmpty)
	}
	if utf8.RuneCountInString(text) > maxTitleLen {
		return h.sendText(chatID, fmt.Sprintf(messages.TitleTooLong, maxTitleLen))
	}

	data, err := h.stateManager.GetSubmitAdData(userID)
	if err != nil {
		return h.sendText(chatID, messages.NoSession)
	}

	data.Title = text
	h.stateManager.SetState(userID, states.SubmitAdWaitDescription, data)

	return h.sendText(chatID, messages.AskDescription)
}

func (h *Handler) handleDescriptionInput(update *tgbotapi.Update) error {
	userID, chatID := extractUserID(update), extractChatID(update)

	text, ok := textInput(update)
	if !ok {
		return h.sendText(chatID, messages.NeedText)
	}
	if text == "" {
		return h.sendText(chatID, messages.TextEmpty)
	}
	if utf8.RuneCountInString(text) > maxDescLen {
		return h.sendText(chatID, fmt.Sprintf(messages.DescriptionTooLong, maxDescLen))
	}

	data, err := h.stateManager.GetSubmitAdData(userID)
	if err != nil {
		return h.sendText(chatID, messages.NoSession)
	}

	data.Description = text
	h.stateManager.SetState(userID, states.SubmitAdWaitLink, data)

	return h.sendText(chatID, messages.AskLink)
}

func (h *Handler) handleLinkInput(update *tgbotapi.Update) error {
	userID, chatID := extractUserID(update), extractChatID(update)

	text, ok := textInput(update)
	if !ok {
		return h.sendText(chatID, messages.NeedText)
	}
	if !IsValidAdURL(text) {
		return h.sendText(chatID, messages.InvalidURL)
	}

	data, err := h.stateManager.GetSubmitAdData(userID)
	if err != nil {
		return h.sendText(chatID, messages.NoSession)
	}

	data.LinkURL = text
	h.stateManager.SetState(userID, states.SubmitAdWaitContact, data)

	return h.sendText(chatID, messages.AskContact)
}

func (h *Handler) handleContactInput(update *tgbotapi.Update) error {
	userID, chatID := extractUserID(update), extractChatID(update)

	text, ok := textInput(update)
	if !ok {
		return h.sendText(chatID, messages.NeedText)
	}
	if text == "" {
		return h.sendText(chatID, messages.TextEmpty)
	}
	if utf8.RuneCountInString(text) > maxContactLen {
		return h.sendText(chatID, fmt.Sprintf(messages.ContactTooLong, maxContactLen))
	}

	data, err := h.stateManager.GetSubmitAdData(userID)
	if err != nil {
		return h.sendText(chatID, messages.NoSession)
	}

	data.ContactInfo = text
	h.stateManager.SetState(userID, states.SubmitAdWaitName, data)

	return h.sendText(chatID, messages.AskCustomerName)
}

func (h *Handler) handleNameInput(update *tgbotapi.Update) error {
	userID, chatID := extractUserID(update), extractChatID(update)

	text, ok := textInput(update)
	if !ok {
		return h.sendText(chatID, messages.NeedText)
	}
	if text == "" {
		return h.sendText(chatID, messages.TextEmpty)
	}
	if utf8.RuneCountInString(text) > maxNameLen {
		return h.sendText(chatID, fmt.Sprintf(messages.NameTooLong, maxNameLen))
	}

	data, err := h.stateManager.GetSubmitAdData(userID)
	if err != nil {
		return h.sendText(chatID, messages.NoSession)
	}

	data.CustomerName = text
	h.stateManager.SetState(userID, states.SubmitAdWaitMedia, data)

	return h.sendText(chatID, messages.AskMedia)
}

// handleMediaInput принимает баннер, сохраняет заявку и переводит сессию в
// ожидание квитанции. В сессии после этого остается только id заявки.
func (h *Handler) handleMediaInput(ctx context.Context, update *tgbotapi.Update) error {
	userID, chatID := extractUserID(update), extractChatID(update)

	fileID, ok := mediaFileID(update)
	if !ok {
		return h.sendText(chatID, messages.NeedMedia)
	}

	data, err := h.stateManager.GetSubmitAdData(userID)
	if err != nil {
		return h.sendText(chatID, messages.NoSession)
	}

	mediaURL, err := h.files.FileDirectURL(fileID)
	if err != nil {
		h.logger.Error("Failed to resolve media file", "error", err)
		return h.sendText(chatID, messages.Error)
	}

	created, err := h.submissionService.Create(ctx, submissions.Submission{
		TgUserID:     userID,
		CustomerName: data.CustomerName,
		Title:        data.Title,
		Description:  data.Description,
		LinkURL:      data.LinkURL,
		ContactInfo:  data.ContactInfo,
		MediaURL:     mediaURL,
		TariffDays:   data.TariffDays,
		PriceUAH:     data.PriceUAH,
	})
	if err != nil {
		h.logger.Error("Failed to create submission", "error", err)
		return h.sendText(chatID, messages.Error)
	}

	h.stateManager.SetState(userID, states.SubmitAdWaitPaymentProof,
		&flows.SubmitAdFlowData{SubmissionID: created.ID})

	return h.sendText(chatID, fmt.Sprintf(messages.SubmissionCreated,
		created.ID, h.paymentCard, h.paymentIBAN))
}

// handlePaymentProofInput принимает квитанцию и завершает диалог.
func (h *Handler) handlePaymentProofInput(ctx context.Context, update *tgbotapi.Update) error {
	userID, chatID := extractUserID(update), extractChatID(update)

	fileID, ok := mediaFileID(update)
	if !ok {
		return h.sendText(chatID, messages.NeedMedia)
	}

	data, err := h.stateManager.GetSubmitAdData(userID)
	if err != nil {
		return h.sendText(chatID, messages.NoSession)
	}

	proofURL, err := h.files.FileDirectURL(fileID)
	if err != nil {
		h.logger.Error("Failed to resolve proof file", "error", err)
		return h.sendText(chatID, messages.Error)
	}

	if err := h.submissionService.AttachPaymentProof(ctx, data.SubmissionID, proofURL); err != nil {
		h.logger.Error("Failed to attach payment proof",
			"submission_id", data.SubmissionID, "error", err)
		return h.sendText(chatID, messages.Error)
	}

	h.stateManager.Clear(userID)

	return h.sendText(chatID, messages.ProofReceived)
}

func (h *Handler) tariffsKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range h.tariffService.List() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.Label(), t.CallbackData()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (h *Handler) sendText(chatID int64, text string) error {
	_, err := h.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// textInput достает текст сообщения. Второе значение false, если на текстовом
// шаге пришло что-то другое (фото, стикер и т.п.).
func textInput(update *tgbotapi.Update) (string, bool) {
	if update.Message == nil || update.Message.Text == "" {
		return "", false
	}
	return strings.TrimSpace(update.Message.Text), true
}

// mediaFileID достает file_id вложения: для фото берется самое большое
// разрешение, иначе — документ.
func mediaFileID(update *tgbotapi.Update) (string, bool) {
	if update.Message == nil {
		return "", false
	}
	if len(update.Message.Photo) > 0 {
		return update.Message.Photo[len(update.Message.Photo)-1].FileID, true
	}
	if update.Message.Document != nil {
		return update.Message.Document.FileID, true
	}
	return "", false
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
