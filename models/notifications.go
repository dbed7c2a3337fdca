package models

// Notification is a broadcast sent to every registered user.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Toast is a user-visible outcome message.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

const ToastDestructive = "destructive"

// IsDestructive reports whether the toast signals a failure or a denial.
func (t Toast) IsDestructive() bool {
	return t.Variant == ToastDestructive
}
