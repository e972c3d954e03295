package handlers

import (
	userRepoPkg "alabraar/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetUserByIDHandler      gin.HandlerFunc
	UpdateUserHandler       gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc
	RevokeUserTokenHandler  gin.HandlerFunc
	ListUstaadhsHandler     gin.HandlerFunc

	// Availability endpoints
	GetAvailabilityHandler gin.HandlerFunc
	SetAvailabilityHandler gin.HandlerFunc
	GetTimeSlotsHandler    gin.HandlerFunc
	GetBookedSlotsHandler  gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	MyBookingsHandler    gin.HandlerFunc
	UpdateBookingHandler gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
	CompleteSlotHandler  gin.HandlerFunc
	CancelSlotHandler    gin.HandlerFunc
	PaymentIntentHandler gin.HandlerFunc
	SettlePaymentHandler gin.HandlerFunc

	// Message endpoints
	SendMessageHandler     gin.HandlerFunc
	GetConversationHandler gin.HandlerFunc
	MarkReadHandler        gin.HandlerFunc
	UnreadCountHandler     gin.HandlerFunc

	// Achievement endpoints
	MyAchievementsHandler   gin.HandlerFunc
	AwardAchievementHandler gin.HandlerFunc

	// Admin endpoints
	ListUsersHandler      gin.HandlerFunc
	ApproveUstaadhHandler gin.HandlerFunc
	SetSuspensionHandler  gin.HandlerFunc
}
