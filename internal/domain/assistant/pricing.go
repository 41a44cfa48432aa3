package assistant

import "strings"

var pricingKeywords = []string{
	"price", "pricing", "cost", "charges", "charge", "rate", "rates",
	"quotation", "quote", "budget", "fees", "fee", "package",
	"how much", "per day", "per match", "per hour", "per event",
	"estimate", "approx price", "rough idea",
}

// Common misspellings of "quotation" seen in real enquiries.
var sloppyKeywords = []string{
	"quat", "quatation", "qout", "qotation", "qoute", "quation",
}

const pricingMessage = "For pricing and custom quotations (e.g. a 5-camera cricket setup), " +
	"please contact our team:\n\n" +
	"📞 Call: +91-11-42908809 / +91-9911013303\n" +
	"📝 Or fill the enquiry form on our website.\n\n" +
	"Once we know your exact requirements (camera count, duration, city, platforms, " +
	"graphics, replays, etc.) we’ll send a tailored quote."

// pricingAnswer returns the canned contact response when the question
// carries pricing intent. Containment is checked on the lowercased question
// only; punctuation is deliberately kept.
func pricingAnswer(question string) (string, bool) {
	q := strings.ToLower(question)
	for _, w := range pricingKeywords {
		if strings.Contains(q, w) {
			return CleanAnswer(pricingMessage), true
		}
	}
	for _, w := range sloppyKeywords {
		if strings.Contains(q, w) {
			return CleanAnswer(pricingMessage), true
		}
	}
	return "", false
}
