package model

// Collection is the site settings document collection; it holds a single
// document under SingletonID.
const (
	Collection  = "settings"
	SingletonID = "site"
)

// SiteSettings is the editable site-wide configuration served to the
// public web client.
type SiteSettings struct {
	SiteName     string `json:"site_name"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`

	SocialFacebook  string `json:"social_facebook"`
	SocialInstagram string `json:"social_instagram"`
	SocialLinkedin  string `json:"social_linkedin"`
	SocialYoutube   string `json:"social_youtube"`

	WhatsappNumber    string `json:"whatsapp_number"`
	GoogleAnalyticsID string `json:"google_analytics_id"`
}

// Defaults returns the settings served before an admin ever saves any.
func Defaults() *SiteSettings {
	return &SiteSettings{
		SiteName:        "Skillax Digital Marketing Academy",
		Tagline:         "Launch Your Digital Marketing Career",
		ContactEmail:    "contact@skillax.in",
		ContactPhone:    "+91 9876543210",
		Address:         "Mananthavady, Wayanad, Kerala",
		MetaTitle:       "Skillax - Digital Marketing Academy in Wayanad, Kerala",
		MetaDescription: "Premier digital marketing training institute in Wayanad offering courses with industry-recognized certifications and placement assistance.",
		MetaKeywords:    "digital marketing course, wayanad, kerala, seo training, social media marketing",
	}
}
