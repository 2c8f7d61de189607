package models

type Doctor struct {
	ID        string `json:"_id" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name" bson:"name"`
	Specialty string `json:"specialty" bson:"specialty"`
	Image     string `json:"image,omitempty" bson:"image,omitempty"`
	TimeModel `bson:",inline"`
}
