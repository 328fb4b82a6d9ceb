package entities

import "time"

type Role string

const (
	RoleDonor     Role = "DONOR"
	RoleNGO       Role = "NGO"
	RoleVolunteer Role = "VOLUNTEER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleNGO, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID       string
	Name     string
	Username string
	Email    string
	Role     Role
	Points   int
}

// Session сессия браузера. ID выдается нами, PlatformToken (если платформа
// его вернула) прикладывается к запросам к платформе.
type Session struct {
	ID            string
	PlatformToken string
	User          User
	IssuedAt      time.Time
}

func (s *Session) Marshal() ([]byte, error) {
	return marshal(s)
}

func (s *Session) Unmarshal(data []byte) error {
	return unmarshal(data, s)
}
