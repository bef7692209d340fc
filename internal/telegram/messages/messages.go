package messages

// Загальні
const (
	Error     = "❌ Помилка. Будь ласка, спробуйте пізніше."
	Cancelled = "Скасовано"
	NoSession = "Натисніть /start"
)

// Кнопки
const (
	ButtonCreateAd = "📝 Оформити рекламу"
	ButtonLater    = "❌ Поки що ні"
)

// Привітання
const (
	WelcomeTitle  = "👋 Вітаємо в DeTransport Ads!"
	WelcomeLater  = "Добре 🙂 Напишіть /start коли будете готові"
	TariffsHeader = "💰 Тарифи:"
)

// Кроки діалогу
const (
	ChooseTariff    = "Оберіть тариф:"
	TariffChosen    = "Обрано %d днів (%d грн)\n\nНапишіть заголовок"
	AskDescription  = "Напишіть опис"
	AskLink         = "Надішліть посилання"
	AskContact      = "Контактні дані"
	AskCustomerName = "Імʼя та прізвище"
	AskMedia        = "Надішліть банер (фото або файл)"
)

// Валідація
const (
	TitleTooLong       = "❌ Заголовок задовгий (максимум %d символів)"
	DescriptionTooLong = "❌ Опис задовгий (максимум %d символів)"
	ContactTooLong     = "❌ Контактні дані задовгі (максимум %d символів)"
	NameTooLong        = "❌ Імʼя задовге (максимум %d символів)"
	TextEmpty          = "❌ Текст не може бути порожнім"
	InvalidURL         = "Некоректне посилання"
	NeedText           = "Будь ласка, надішліть текст"
	NeedMedia          = "Будь ласка, надішліть фото або файл"
)

// Оплата
const (
	SubmissionCreated = "✅ Заявка #%d створена.\n\n💳 Оплатіть розміщення:\nКартка: %s\nIBAN: %s\n\nПісля оплати надішліть скріншот квитанції"
	ProofReceived     = "✅ Квитанцію отримано. Очікуйте перевірки"
)

// Адмінські команди
const (
	AccessDenied    = "⛔ Немає доступу"
	NoPending       = "Немає заявок"
	UsageApprove    = "Використання: /approve <id>"
	UsageDisable    = "Використання: /disable <id>"
	NotFound        = "Заявку #%d не знайдено"
	Approved        = "✅ Заявка #%d активна з %s до %s"
	Disabled        = "🚫 Заявку #%d знято з показу"
	PendingListItem = "#%d — %s\n%s"
	MyID            = "Ваш ID: %d"
)
