package queue

// Task type names shared between the API (producer) and the worker.
const (
	TaskLeadNotify      = "lead:notify"
	TaskAnalyticsDigest = "analytics:digest"
)

// LeadNotifyPayload is the body of a lead:notify task.
type LeadNotifyPayload struct {
	LeadID   string `json:"lead_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Source   string `json:"source"`
}
