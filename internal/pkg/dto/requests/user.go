package requests

type UpsertUser struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Photo string `json:"photo" validate:"omitempty,url"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}
