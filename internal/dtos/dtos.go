package dtos

type TokenRequest struct {
	Email string `json:"email" binding:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
