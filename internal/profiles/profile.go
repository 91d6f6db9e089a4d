// Package profiles keeps the learner profiles and their statistics.
//
// The whole profile set is persisted as one JSON record under a single key,
// so any key/value backend can hold it.
package profiles

import "fmt"

// PointsPerCorrectAnswer converts a lesson score into profile points.
const PointsPerCorrectAnswer = 50

// Stats are the cumulative statistics of a profile. Every field only
// ever grows.
type Stats struct {
	TotalPoints      int `json:"totalPoints"`
	StreakCount      int `json:"streak"`
	CompletedLessons int `json:"completedLessons"`
}

// Profile is a learner identity. An empty Password means open access.
//
// Passwords are stored in plain text and shown to nobody but are not a
// security boundary; they only keep siblings out of each other's stats.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	GradeLevel  string `json:"grade"`
	AvatarRef   string `json:"avatar"`
	Password    string `json:"password,omitempty"`
	Stats       Stats  `json:"stats"`
}

// HasPassword reports whether the profile is gated by a password.
func (p Profile) HasPassword() bool {
	return p.Password != ""
}

// avatarURL builds the generated avatar reference for seed.
func avatarURL(seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", seed)
}

// Seed returns the profile set used when nothing has been stored yet.
func Seed() []Profile {
	return []Profile{
		{
			ID:          "prive-1",
			DisplayName: "Leerling 1",
			GradeLevel:  "Klas 2",
			AvatarRef:   avatarURL("Felix"),
			Password:    "123",
		},
		{
			ID:          "prive-2",
			DisplayName: "Leerling 2",
			GradeLevel:  "Klas 4",
			AvatarRef:   avatarURL("Aneka"),
			Password:    "456",
		},
		{
			ID:          "openbaar",
			DisplayName: "Gast Gebruiker",
			GradeLevel:  "Groep 8",
			AvatarRef:   avatarURL("Guest"),
		},
	}
}
