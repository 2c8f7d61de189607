package requests

type CreateDoctor struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,max=100"`
	Specialty string `json:"specialty" validate:"required,max=100"`
	Image     string `json:"image" validate:"omitempty,url"`
}
