package telegram

import "detransport-ads-bot/internal/config"

// AdminChecker проверяет является ли пользователь админом. Сейчас админ один
// и задается конфигом; политика спрятана за интерфейсом в местах вызова,
// чтобы замена на роли не трогала команды модерации.
type AdminChecker struct {
	adminID int64
}

// NewAdminChecker создает новый проверялка админов
func NewAdminChecker(cfg *config.TelegramConfig) *AdminChecker {
	return &AdminChecker{
		adminID: cfg.AdminID,
	}
}

// IsAdmin проверяет является ли пользователь с данным Telegram ID админом
func (a *AdminChecker) IsAdmin(telegramID int64) bool {
	return a.adminID != 0 && telegramID == a.adminID
}
