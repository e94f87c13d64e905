package handlers

import (
	"github.com/minseokang/walkmate/internal/breeds"
	"github.com/minseokang/walkmate/internal/interfaces"
)

// historyDays is the window shown by the private walk history view.
const historyDays = 7

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	UserService    interfaces.UserServiceInterface
	DogService     interfaces.DogServiceInterface
	ActivitySvc    interfaces.ActivityServiceInterface
	LeaderboardSvc interfaces.LeaderboardServiceInterface
	Breeds         *breeds.Table
	Sessions       *SessionRegistry
}
