package dto

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// PostCommentResponse reports the two steps of a post independently.
type PostCommentResponse struct {
	Success           bool   `json:"success"`
	ExternalCommentID string `json:"external_comment_id"`
	Tracked           bool   `json:"tracked"`
	TrackingWarning   string `json:"tracking_warning,omitempty"`
}

// UpdateCommentRequest attaches a platform comment id to a stored record.
type UpdateCommentRequest struct {
	ExternalCommentID string `json:"external_comment_id" binding:"required"`
}
