package screen

import (
	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/store"
)

// Services are the dependencies shared by all screens.
type Services struct {
	Profiles *profiles.Store
	Lessons  lessons.Provider

	// Events records lesson sessions. May be nil.
	Events store.EventRepo
}
