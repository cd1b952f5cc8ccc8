package responder

// Log prefixes
const (
	LogPrefixFAQ   = "internal.responder.FAQ.Handle"
	LogPrefixOrder = "internal.responder.Order.Handle"
)

// Answers given when nothing in the catalog matches.
const (
	AnswerRephrase    = "Could you rephrase your question?"
	AnswerOrderIDHint = "Could you rephrase your question? To check your order, please provide your order ID like ORD123."
	orderAnswerFormat = "Order %s for %s: %s - Status: %s. %s"
)
