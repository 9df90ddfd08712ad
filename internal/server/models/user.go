package models

// Notification is a short message shown to a user on their home page.
type Notification struct {
	Author      string `json:"author"`
	Description string `json:"description"`
}

// User is a stored account record. Username is the sole lookup key, unique
// within a store and immutable once created.
type User struct {
	Name           string         `json:"name"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	Birthday       string         `json:"birthday,omitempty"`
	Friends        []string       `json:"friends,omitempty"`
	Notifications  []Notification `json:"notifications,omitempty"`
	HashedPassword string         `json:"-"`
}

// Public returns a copy of the user with the password hash cleared. Handlers
// render this view, never the stored record.
func (u *User) Public() User {
	pub := *u
	pub.HashedPassword = ""
	return pub
}
