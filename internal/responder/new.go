package responder

import (
	"strings"

	"clinic-support-router/pkg/log"
)

// FAQ answers general clinic questions by keyword.
type FAQ struct {
	l       log.Logger
	entries []FAQEntry
}

// NewFAQ creates an FAQ responder over the catalog's FAQ entries.
func NewFAQ(l log.Logger, c Catalog) *FAQ {
	return &FAQ{l: l, entries: c.FAQ}
}

// OrderStatus answers order questions from the catalog's orders.
type OrderStatus struct {
	l      log.Logger
	orders map[string]Order
}

// NewOrderStatus creates an order responder. Order ids are matched case-insensitively.
func NewOrderStatus(l log.Logger, c Catalog) *OrderStatus {
	orders := make(map[string]Order, len(c.Orders))
	for _, o := range c.Orders {
		orders[strings.ToUpper(o.ID)] = o
	}
	return &OrderStatus{l: l, orders: orders}
}
