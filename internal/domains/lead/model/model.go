package model

// Collection is the leads document collection.
const Collection = "leads"

// Well-known statuses. Transitions are free-form: admins may set any value,
// and anything outside these shows up in the by-status breakdown only.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusConverted = "converted"
)

// Known intake sources.
const (
	SourceWebsite        = "website"
	SourceContactForm    = "contact_form"
	SourceChatbot        = "chatbot"
	SourceProfileCreator = "profile_creator"
)

// Lead is a prospective customer captured from any intake channel. The id
// is assigned once at creation and never changes; leads are never hard
// deleted.
type Lead struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Interest  string `json:"interest"`
	Source    string `json:"source"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
