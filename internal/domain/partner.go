package domain

import "time"

type Partner struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreatePartnerInput struct {
	Name           string
	Email          string
	TelegramChatID *int64
}
