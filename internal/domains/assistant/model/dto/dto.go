package dto

import (
	"grandhotel/infras/completion"
)

type ChatRequest struct {
	Message string               `json:"message" validate:"required,max=2000"`
	History []completion.Message `json:"history" validate:"omitempty,max=50"`
}

type ChatResponse struct {
	Response              string `json:"response"`
	Success               bool   `json:"success"`
	Timestamp             string `json:"timestamp"`
	ModelUsed             string `json:"model_used"`
	BookingProcessed      bool   `json:"booking_processed"`
	CancellationProcessed bool   `json:"cancellation_processed"`
}
