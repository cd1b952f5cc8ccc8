package telegram

const (
	LogPrefixWebhook = "internal.router.delivery.telegram.HandleWebhook"
	LogPrefixProcess = "internal.router.delivery.telegram.processMessage"

	// maxInFlight bounds updates being answered at once. Beyond it updates
	// are refused with 429 and Telegram redelivers them later.
	maxInFlight = 32

	commandStart = "/start"
	commandHelp  = "/help"

	msgWelcome = "Hello! I'm the clinic support assistant. Ask me about our hours, services, " +
		"location or pricing, or send your order ID (like ORD123) to check an order."
	msgHelp = "Examples:\n- What are your opening hours?\n- Where is my order ORD123?\n- Do you offer dental cleaning?"
)
