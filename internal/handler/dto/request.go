package dto

type PriceOptionRequest struct {
	Code       string `json:"code" binding:"required"`
	Label      string `json:"label"`
	UnitAmount int64  `json:"unit_amount" binding:"required,gt=0"`
}

type CreateExperienceRequest struct {
	Slug         string               `json:"slug" binding:"required"`
	Title        string               `json:"title" binding:"required"`
	Description  string               `json:"description"`
	PartnerID    string               `json:"partner_id" binding:"required,uuid"`
	Currency     string               `json:"currency" binding:"required,len=3"`
	Capacity     int                  `json:"capacity" binding:"required,gt=0"`
	PriceOptions []PriceOptionRequest `json:"price_options" binding:"required,min=1,dive"`
}

type CreatePartnerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateCartRequest struct {
	ExperienceSlug string `json:"experience_slug" binding:"required"`
	Date           string `json:"date" binding:"required"`
	PartySize      int    `json:"party_size" binding:"required,gt=0"`
	PriceOption    string `json:"price_option" binding:"required"`
}

type ActivityRequest struct {
	Event string `json:"event" binding:"required"`
}

type CustomerRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
}

type CheckoutRequest struct {
	Customer CustomerRequest `json:"customer"`
}

// CreateOrderRequest carries the amount in minor units. It must equal the
// booking total or the order is refused.
type CreateOrderRequest struct {
	BookingID   string          `json:"booking_id" binding:"required,uuid"`
	Amount      int64           `json:"amount" binding:"required,gt=0"`
	Currency    string          `json:"currency" binding:"required,len=3"`
	Description string          `json:"description"`
	Customer    CustomerRequest `json:"customer"`
}

// IPNQuery is the provider push notification. Field names follow the provider.
type IPNQuery struct {
	OrderTrackingID        string `form:"OrderTrackingId" json:"OrderTrackingId"`
	OrderMerchantReference string `form:"OrderMerchantReference" json:"OrderMerchantReference"`
	OrderNotificationType  string `form:"OrderNotificationType" json:"OrderNotificationType"`
}

type CallbackQuery struct {
	OrderTrackingID        string `form:"OrderTrackingId"`
	OrderMerchantReference string `form:"OrderMerchantReference"`
}
