package response

type WebhookResult struct {
	Processed bool `json:"processed,omitempty"`
	Duplicate bool `json:"duplicate,omitempty"`
}
