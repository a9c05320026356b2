package repository

import "context"

// Store is the aggregate persistence port. Exactly one backend (memory,
// postgres, mongodb) is active per process, selected at startup; handlers
// and usecases only see the narrow per-entity interfaces.
type Store interface {
	UserRepository
	ExhibitionRepository
	TicketTypeRepository
	TicketRepository
	ConversationRepository
	AnalyticsRepository
	TestimonialRepository

	// InitializeData seeds fixture data when the user table/collection is
	// empty. Safe to call on every startup.
	InitializeData(ctx context.Context) error
}
