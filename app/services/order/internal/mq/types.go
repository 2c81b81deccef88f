package mq

// Asynq task types for order emails
const (
	TaskOrderConfirmationEmail = "order:email_confirmation"
	TaskAdminNotificationEmail = "order:email_admin"
)

// OrderCreatedEvent is the payload published to Kafka when an order lands.
type OrderCreatedEvent struct {
	OrderId     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Email       string `json:"email"`
	TotalAmount int64  `json:"total_amount"`
	ItemCount   int    `json:"item_count"`
}

// EmailTaskPayload carries what the email handlers need; the full order is
// re-read from the database at send time.
type EmailTaskPayload struct {
	OrderId     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Email       string `json:"email"`
}
