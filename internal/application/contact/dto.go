package contact

// ContactMessageRequest is the contact form payload
type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// QuoteRequestRequest is the bulk quote form payload
type QuoteRequestRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Address     string `json:"address"`
	Fulfillment string `json:"fulfillment"`
	Message     string `json:"message"`
}

// SubmissionResponse acknowledges a stored form submission
type SubmissionResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}
