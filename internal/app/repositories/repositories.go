package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	MeetingRepository     *MeetingRepository
	MessageRepository     *MessageRepository
	AchievementRepository *AchievementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		MeetingRepository:     NewMeetingRepository(db),
		MessageRepository:     NewMessageRepository(db),
		AchievementRepository: NewAchievementRepository(db),
	}
}
