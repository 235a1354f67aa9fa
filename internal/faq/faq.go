package faq

// Entry is one static question/answer pair. IDs are unique and the order of
// Entries is the display order.
type Entry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var entries = []Entry{
	{
		ID:       "1",
		Question: "What is the difference between Decentralized and Knightsbridge routes?",
		Answer:   "The Decentralized route offers a fully autonomous token launch process, while the Knightsbridge Approved route provides additional compliance, legal structuring, and professional vetting services for a more secure and regulated approach.",
	},
	{
		ID:       "2",
		Question: "How long does the token creation process take?",
		Answer:   "For Decentralized launches, tokens can be created within 24-48 hours. Knightsbridge Approved processes typically take 2-4 weeks due to additional compliance and legal review requirements.",
	},
	{
		ID:       "3",
		Question: "What payment methods do you accept?",
		Answer:   "We accept multiple payment methods including Stripe (credit/debit cards), USDT (cryptocurrency), and Bitcoin for maximum flexibility.",
	},
	{
		ID:       "4",
		Question: "Do you provide legal documentation?",
		Answer:   "Yes, both routes offer legal documentation services. The Knightsbridge route includes comprehensive legal structuring, while the Decentralized route offers optional legal document packages.",
	},
	{
		ID:       "5",
		Question: "Can you help with exchange listings?",
		Answer:   "Absolutely! We provide exchange listing services for both centralized and decentralized exchanges, helping you get your token listed on major trading platforms.",
	},
	{
		ID:       "6",
		Question: "What blockchain networks do you support?",
		Answer:   "We support multiple blockchain networks including Ethereum, Binance Smart Chain, Polygon, and other EVM-compatible networks. Custom blockchain requirements can be discussed during consultation.",
	},
	{
		ID:       "7",
		Question: "Do you provide ongoing support after token launch?",
		Answer:   "Yes, we offer post-launch support including technical assistance, marketing guidance, and additional services to help ensure your project's success.",
	},
	{
		ID:       "8",
		Question: "What documents do I need to prepare?",
		Answer:   "Required documents vary by route. Generally, you'll need business plans, KYC documentation, and any relevant legal documents. Our platform will guide you through the specific requirements for your chosen path.",
	},
}

// Entries returns the FAQ list in display order. The returned slice is a copy.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry with the given id.
func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
