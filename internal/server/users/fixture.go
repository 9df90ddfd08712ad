package users

import (
	"fmt"

	"github.com/akarpov87/authgate/internal/server/auth"
	"github.com/akarpov87/authgate/internal/server/models"
)

// devAccounts are the development fixture credentials. A real deployment
// replaces the whole fixture with a durable store.
var devAccounts = []struct {
	user     models.User
	password string
}{
	{
		user: models.User{
			Name:     "John Doe",
			Username: "johndoe",
			Email:    "johndoe@example.com",
			Birthday: "1990-04-12",
			Friends:  []string{"alice"},
			Notifications: []models.Notification{
				{Author: "alice", Description: "added you as a friend"},
			},
		},
		password: "password123",
	},
	{
		user: models.User{
			Name:     "Alice Chains",
			Username: "alice",
			Email:    "alice@example.com",
			Friends:  []string{"johndoe"},
		},
		password: "wonderland",
	},
}

// DefaultFixture builds the development account set, hashing each fixture
// password with the given bcrypt cost.
func DefaultFixture(bcryptCost int) ([]models.User, error) {
	fixture := make([]models.User, 0, len(devAccounts))
	for _, a := range devAccounts {
		digest, err := auth.HashPassword(a.password, bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing fixture password for %q: %w", a.user.Username, err)
		}
		u := a.user
		u.HashedPassword = digest
		fixture = append(fixture, u)
	}
	return fixture, nil
}
