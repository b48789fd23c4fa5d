package handlers

// Request bodies. Unknown fields, including any client-supplied user_id, are
// ignored by the decoder. Required strings are pointers so that a present but
// empty value binds while a missing one is rejected.

type ProgressCreateRequest struct {
	ContentID *string `json:"content_id" binding:"required"`
	Status    *string `json:"status" binding:"required"`
	Score     *int    `json:"score"`
}

type UserProfileUpdateRequest struct {
	NeuroProfileID *int64 `json:"neuroprofile_id" binding:"required"`
}

type ContentAdaptationRequest struct {
	Text *string `json:"text" binding:"required"`
}

type TextToSpeechRequest struct {
	Text *string `json:"text" binding:"required"`
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
