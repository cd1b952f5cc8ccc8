package responder

// DefaultCatalog returns the built-in clinic data.
func DefaultCatalog() Catalog {
	return Catalog{
		FAQ: []FAQEntry{
			{
				Topic:    "hours",
				Keywords: []string{"hour", "open", "close", "closing", "time"},
				Answer:   "We are open Monday to Saturday from 9:00 AM to 6:00 PM.",
			},
			{
				Topic:    "emergency",
				Keywords: []string{"emergency", "urgent", "after hours"},
				Answer:   "For emergencies outside opening hours, please call +123-555-EMERGENCY.",
			},
			{
				Topic:    "services",
				Keywords: []string{"service", "offer", "provide", "do you do", "what do you"},
				Answer:   "We offer general check-ups, vaccinations, grooming, dental cleaning, and surgery.",
			},
			{
				Topic:    "location",
				Keywords: []string{"where", "locat", "address", "find you"},
				Answer:   "We are located at 123 Pet Lane, Springfield.",
			},
			{
				Topic:    "contact",
				Keywords: []string{"contact", "phone", "call", "email", "reach"},
				Answer:   "You can contact us at +123-555-PAWS or email hello@petclinic.example.",
			},
			{
				Topic:    "appointment",
				Keywords: []string{"appointment", "book", "schedule", "reservation"},
				Answer:   "You can book an appointment online through our website or by calling +123-555-PAWS.",
			},
			{
				Topic:    "pricing",
				Keywords: []string{"cost", "price", "pricing", "how much", "fee"},
				Answer:   "Routine visits start at $65. Dental cleanings average $225 including anesthesia.",
			},
		},
		Orders: []Order{
			{
				ID:                "ORD123",
				Type:              "prescription",
				Item:              "Heartguard Plus",
				Status:            "shipped",
				Pet:               "Max",
				EstimatedDelivery: "March 5, 2025",
				Notes:             "Tracking number: TRK829103",
			},
			{
				ID:                "ORD456",
				Type:              "lab_results",
				Item:              "Blood panel",
				Status:            "ready",
				Pet:               "Luna",
				EstimatedDelivery: "Available for pickup",
				Notes:             "Results stored in patient portal.",
			},
			{
				ID:                "ORD789",
				Type:              "food_order",
				Item:              "Royal Canin Gastrointestinal 8lb",
				Status:            "processing",
				Pet:               "Bella",
				EstimatedDelivery: "March 9, 2025",
				Notes:             "Shipment expected to go out within 24 hours.",
			},
		},
	}
}
