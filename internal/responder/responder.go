package responder

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var orderIDPattern = regexp.MustCompile(`ORD\d+`)

// Handle returns the first FAQ answer whose keywords occur in the query.
func (f *FAQ) Handle(ctx context.Context, query string) string {
	q := strings.ToLower(query)
	for _, e := range f.entries {
		for _, kw := range e.Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				f.l.Debugf(ctx, "%s: matched topic %s on %q", LogPrefixFAQ, e.Topic, kw)
				return e.Answer
			}
		}
	}
	return AnswerRephrase
}

// Handle extracts the first order id from the query and describes that order.
func (o *OrderStatus) Handle(ctx context.Context, query string) string {
	id := orderIDPattern.FindString(strings.ToUpper(query))
	if id == "" {
		return AnswerOrderIDHint
	}

	order, ok := o.orders[id]
	if !ok {
		o.l.Debugf(ctx, "%s: unknown order id %s", LogPrefixOrder, id)
		return AnswerOrderIDHint
	}

	return strings.TrimSpace(fmt.Sprintf(orderAnswerFormat, id, order.Pet, order.Item, order.Status, order.Notes))
}
