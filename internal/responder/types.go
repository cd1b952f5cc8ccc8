package responder

// FAQEntry is one canned answer and the keywords that select it.
type FAQEntry struct {
	Topic    string   `yaml:"topic"`
	Keywords []string `yaml:"keywords"`
	Answer   string   `yaml:"answer"`
}

// Order is a mock order record.
type Order struct {
	ID                string `yaml:"id"`
	Type              string `yaml:"type"`
	Item              string `yaml:"item"`
	Status            string `yaml:"status"`
	Pet               string `yaml:"pet"`
	EstimatedDelivery string `yaml:"estimated_delivery"`
	Notes             string `yaml:"notes"`
}

// Catalog holds the data both responders answer from.
// FAQ entries are checked in order; the first keyword hit wins.
type Catalog struct {
	FAQ    []FAQEntry `yaml:"faq"`
	Orders []Order    `yaml:"orders"`
}
