package uploads

import "time"

type textRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// UploadResponse is an upload record. Content is omitted from list pages.
type UploadResponse struct {
	ID        string    `json:"uploadId"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	MimeType  string    `json:"mimeType"`
	SizeBytes int64     `json:"sizeBytes"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListResponse is a page of uploads.
type ListResponse struct {
	Items  []UploadResponse `json:"items"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

func toResponse(u Upload, withContent bool) UploadResponse {
	resp := UploadResponse{
		ID:        u.ID,
		Kind:      u.Kind,
		Name:      u.Name,
		MimeType:  u.MimeType,
		SizeBytes: u.SizeBytes,
		CreatedAt: u.CreatedAt,
	}
	if withContent {
		resp.Content = u.Content
	}
	return resp
}
