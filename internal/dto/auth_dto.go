package dto

import "github.com/google/uuid"

type TokenPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Exp      int64     `json:"exp"`
	Iat      int64     `json:"iat"`
}

type TokenPair struct {
	AccessToken      string       `json:"access_token"`
	RefreshToken     string       `json:"refresh_token"`
	RefreshExpiresAt int64        `json:"refresh_expires_at"`
	Payload          TokenPayload `json:"payload"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
