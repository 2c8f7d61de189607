package models

// User is keyed by email; the role field is the sole authorization signal.
type User struct {
	ID        string `json:"_id" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name,omitempty" bson:"name,omitempty"`
	Photo     string `json:"photo,omitempty" bson:"photo,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Role      string `json:"role,omitempty" bson:"role,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
