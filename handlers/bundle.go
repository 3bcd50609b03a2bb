package handlers

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	Agent        *AgentHandler
	Catalog      *CatalogHandler
	Booking      *BookingHandler
	Market       *MarketHandler
	Notification *NotificationHandler
	Directory    *DirectoryHandler
	Storage      *StorageHandler
}
