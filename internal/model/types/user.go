package types

type SaveProfileRequest struct {
	Email        string `json:"email" validate:"omitempty,email,lte=254"`
	ProfileName  string `json:"profileName" validate:"required,lte=80"`
	ProfileImage string `json:"profileImage" validate:"omitempty,url,lte=2048"`
	Role         string `json:"role" validate:"omitempty,oneof=user admin"`
}
