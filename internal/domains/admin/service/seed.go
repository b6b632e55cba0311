package service

import (
	"github.com/google/uuid"

	blogmodel "skillax-backend/internal/domains/blog/model"
	coursemodel "skillax-backend/internal/domains/course/model"
	"skillax-backend/internal/shared/utils"
)

// SeedAdminEmail is the bootstrap admin account created by Seed. Exported
// so the handler reports the same address the service seeds.
const SeedAdminEmail = "admin@skillax.in"

const seedAdminPassword = "SkillaxAdmin2024!"

func seedCourses() []*coursemodel.Course {
	now := utils.NowUTC()
	return []*coursemodel.Course{
		{
			ID:               uuid.NewString(),
			Title:            "Professional Digital Marketing",
			Slug:             "professional-digital-marketing",
			ShortDescription: "Complete A-Z digital marketing mastery with AI tools, live projects & guaranteed internship at Infopark IT company.",
			Description:      "Our flagship 4-month comprehensive digital marketing program covering everything from SEO to AI tools. Get hands-on experience with live projects and a guaranteed internship at top IT companies in Infopark, Kochi.",
			Duration:         "4 Months",
			Modules: []coursemodel.Module{
				{Title: "Digital Marketing Fundamentals", Topics: []string{"Marketing Basics", "Digital Channels", "Customer Journey"}},
				{Title: "Search Engine Optimization (SEO)", Topics: []string{"On-Page SEO", "Technical SEO", "Link Building", "Local SEO"}},
				{Title: "Search Engine Marketing (SEM)", Topics: []string{"Google Ads", "Campaign Setup", "Bidding Strategies", "Optimization"}},
				{Title: "Social Media Marketing", Topics: []string{"Facebook", "Instagram", "LinkedIn", "Content Strategy"}},
				{Title: "Content & Email Marketing", Topics: []string{"Content Strategy", "Copywriting", "Email Campaigns", "Automation"}},
				{Title: "AI Tools & Automation", Topics: []string{"ChatGPT", "Midjourney", "Canva AI", "Marketing Automation"}},
				{Title: "Analytics & Reporting", Topics: []string{"Google Analytics", "Data Studio", "ROI Tracking"}},
				{Title: "Internship at Infopark", Topics: []string{"Live Projects", "Client Work", "Portfolio Building"}},
			},
			Highlights: []string{
				"SEO, SEM, SMM, Email Marketing",
				"AI Tools: ChatGPT, Midjourney, Canva AI",
				"Google Ads & Meta Ads Certification",
				"Live Client Projects",
				"Guaranteed Internship at Infopark",
				"100% Placement Assistance",
			},
			Certification: "Google Ads + Google Analytics + Meta Blueprint + HubSpot + SEMrush + Skillax Pro Certificate",
			Price:         "Contact for pricing",
			FeaturedImage: "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=800",
			Active:        true,
			CreatedAt:     now,
		},
		{
			ID:               uuid.NewString(),
			Title:            "Advanced AI-Powered Marketing",
			Slug:             "ai-powered-marketing",
			ShortDescription: "Master cutting-edge AI marketing tools and automation. Perfect for working professionals wanting to upskill.",
			Description:      "Our intensive 2-month program focused on AI-powered marketing tools. Learn to leverage ChatGPT, AI content generators, and marketing automation to stay ahead of the competition. Weekend batches available.",
			Duration:         "2 Months",
			Modules: []coursemodel.Module{
				{Title: "AI Fundamentals for Marketers", Topics: []string{"Understanding AI", "AI in Marketing", "Ethics & Best Practices"}},
				{Title: "ChatGPT & Content Creation", Topics: []string{"Prompt Engineering", "Content Writing", "Ad Copy", "Blogs"}},
				{Title: "AI Image & Video Generation", Topics: []string{"Midjourney", "DALL-E", "Canva AI", "Video Tools"}},
				{Title: "Marketing Automation Tools", Topics: []string{"HubSpot", "Mailchimp AI", "Social Schedulers"}},
				{Title: "Prompt Engineering Mastery", Topics: []string{"Advanced Prompts", "Chain Prompting", "Custom GPTs"}},
				{Title: "AI-Powered Analytics", Topics: []string{"Predictive Analytics", "AI Reporting", "Data Insights"}},
			},
			Highlights: []string{
				"ChatGPT for Marketing",
				"AI Content Generation",
				"AI Image & Video Creation",
				"Marketing Automation",
				"Prompt Engineering Mastery",
				"Weekend Batches Available",
			},
			Certification: "Skillax AI Expert + HubSpot Automation Certificate",
			Price:         "Contact for pricing",
			FeaturedImage: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
			Active:        true,
			CreatedAt:     now,
		},
	}
}

func seedBlogPosts() []*blogmodel.BlogPost {
	now := utils.NowUTC()
	return []*blogmodel.BlogPost{
		{
			ID:            uuid.NewString(),
			Title:         "10 Digital Marketing Trends to Watch in 2025",
			Slug:          "digital-marketing-trends-2025",
			Excerpt:       "Stay ahead of the curve with these emerging digital marketing trends that will shape the industry in 2025.",
			Content:       "Digital marketing is evolving rapidly. Here are the top trends to watch...",
			Category:      "Industry Insights",
			Tags:          []string{"trends", "2025", "digital marketing"},
			Author:        blogmodel.DefaultAuthor,
			FeaturedImage: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800",
			Published:     true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Title:         "How to Start a Career in Digital Marketing in Kerala",
			Slug:          "career-digital-marketing-kerala",
			Excerpt:       "A complete guide to launching your digital marketing career in Kerala with tips from industry experts.",
			Content:       "Kerala's digital economy is growing rapidly. Here's how to get started...",
			Category:      "Career Guide",
			Tags:          []string{"career", "kerala", "jobs"},
			Author:        blogmodel.DefaultAuthor,
			FeaturedImage: "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=800",
			Published:     true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Title:         "SEO vs Social Media Marketing: Which is Right for Your Business?",
			Slug:          "seo-vs-social-media-marketing",
			Excerpt:       "Understanding the differences between SEO and social media marketing to make informed decisions.",
			Content:       "Both SEO and social media are powerful marketing channels. Let's compare...",
			Category:      "Marketing Strategy",
			Tags:          []string{"seo", "social media", "strategy"},
			Author:        blogmodel.DefaultAuthor,
			FeaturedImage: "https://images.unsplash.com/photo-1611926653458-09294b3142bf?w=800",
			Published:     true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
