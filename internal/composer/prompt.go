package composer

import (
	"fmt"
	"strings"

	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/internal/prospector"
)

const (
	// DefaultSubject is used when the completion carries no subject marker.
	DefaultSubject = "AI Outreach That Converts"
	// DefaultFollowupSubject is the follow-up counterpart.
	DefaultFollowupSubject = "Quick follow-up"

	noContextPlaceholder = "No additional website info found."
)

const coldEmailPromptTemplate = `You are a seasoned B2B email strategist writing on behalf of Radian Marketing, a digital marketing agency in Delhi serving B2B, B2C, and ecommerce clients.

Write a short, highly personalized, persuasive cold email for a potential client. The email should feel handcrafted, warm, and results-focused while subtly selling Radian's expertise.

What Radian Marketing offers (pick the most relevant services):
- B2B & B2C Performance Marketing
- Social Media Management & Ads
- SEO (Local, National, Technical)
- Google Business Optimization
- CRO & Website Optimization
- Content Development & Strategy
- Influencer & Podcast Marketing
- Amazon, QuickCommerce & Ecommerce PPC
- WhatsApp & Community Marketing
- End-to-end Lead Generation Services

Follow this structure for the email body:
1. Personal appreciation hook: a genuine, specific compliment about the recipient's website, mission, or product. Show this is not a mass email.
2. Identify a realistic marketing challenge: inconsistent lead flow, high CAC, low engagement, poor retention, underperforming SEO, or fragmented brand presence. Be specific and results-oriented.
3. Amplify the problem slightly: what this challenge costs them in time, growth, or revenue.
4. Introduce Radian as the trusted solution: briefly explain how Radian has helped similar businesses fix the same issue.
5. Soft CTA, for example: "Would it make sense to explore what this might look like for your brand?"
6. Sign-off. Always end with:
Looking forward,
Bhaskar

Formatting rules:
- Subject line and email body only. Nothing else.
- Short paragraphs, max 1-2 sentences per block. Max 7 total sentences.
- Write clearly and humanly. Avoid emojis, ALL CAPS, and hype language.
- Sound like a helpful peer, not a hungry seller.

Company: %s
Website: %s
Keywords: %s
Website context:
%s

Email format:
Subject: <short subject>
Body:
<email body following the structure above>`

const followupPromptTemplate = `You are a seasoned B2B email strategist writing on behalf of Radian Marketing, a digital marketing agency in Delhi serving B2B, B2C, and ecommerce clients.

Write a short, warm follow-up email to a potential client who previously received the email below and has not replied.

Previous email subject: %s
Previous email body:
%s

Follow this structure for the follow-up body:
1. Briefly reference the previous email without guilt-tripping the reader.
2. Add one new piece of value or insight relevant to their business.
3. Soft CTA, for example: "Worth a quick look?"
4. Sign-off. Always end with:
Looking forward,
Bhaskar

Formatting rules:
- Subject line and email body only. Nothing else.
- Max 5 total sentences. No emojis, ALL CAPS, or hype language.

Company: %s
Website: %s
Keywords: %s
Website context:
%s

Email format:
Subject: <short subject>
Body:
<follow-up body following the structure above>`

// contextBlock renders scraped website context for prompt embedding, or a
// fixed placeholder when the scrape produced nothing.
func contextBlock(ctx prospector.Context) string {
	if ctx.Empty() {
		return noContextPlaceholder
	}
	var b strings.Builder
	if ctx.Title != "" {
		fmt.Fprintf(&b, "Website title: %s\n", ctx.Title)
	}
	if ctx.MetaDescription != "" {
		fmt.Fprintf(&b, "Website description: %s\n", ctx.MetaDescription)
	}
	return strings.TrimRight(b.String(), "\n")
}

func coldEmailPrompt(lead leads.Lead, scraped prospector.Context) string {
	return fmt.Sprintf(coldEmailPromptTemplate,
		lead.Company, lead.Website, lead.Keywords, contextBlock(scraped))
}

func followupPrompt(lead leads.Lead, prior Draft, scraped prospector.Context) string {
	return fmt.Sprintf(followupPromptTemplate,
		prior.Subject, prior.Body,
		lead.Company, lead.Website, lead.Keywords, contextBlock(scraped))
}
