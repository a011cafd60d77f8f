package services

// ServiceContainer holds instances of all the application services.
// Handlers receive this container during route registration.
type ServiceContainer struct {
	JournalEntry JournalEntrySvcFacade
	Currency     CurrencySvcFacade
}
