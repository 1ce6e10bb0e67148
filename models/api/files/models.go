package filesapimodels

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UserID      string `json:"user_id"`
	Type        string `json:"type"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
}
