package ticket

// CreateTicketRequest is the payload for raising a support ticket.
type CreateTicketRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Category    string   `json:"category"`
	Attachments []string `json:"attachments,omitempty"`
}

// UpdateTicketRequest is a partial update; nil fields are left untouched.
type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// AddCommentRequest is the payload for replying on a ticket.
type AddCommentRequest struct {
	Content string `json:"content"`
}
