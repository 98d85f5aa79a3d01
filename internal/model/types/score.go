package types

type LikeRequest struct {
	// Delta defaults to a single like when omitted.
	Delta int `json:"delta" validate:"omitempty,gte=1"`
}
