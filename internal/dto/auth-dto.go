package dto

type LoginDTO struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type TokenDTO struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type AssignmentDTO struct {
	BusinessUnitID string `json:"businessUnitId"`
}

type SessionDTO struct {
	UserID      string          `json:"userId"`
	Username    string          `json:"username"`
	Role        *string         `json:"role"`
	Assignments []AssignmentDTO `json:"assignments"`
}
