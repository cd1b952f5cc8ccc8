package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	query := "Where is my order ORD123? 100% urgent"
	prompt := BuildPrompt(query)

	assert.Contains(t, prompt, "Query: "+query)
	assert.Contains(t, prompt, "- FAQ:")
	assert.Contains(t, prompt, "- ORDER:")
	assert.True(t, strings.HasSuffix(prompt, "Respond with ONLY one word: FAQ or ORDER"))
	assert.Equal(t, prompt, BuildPrompt(query))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw       string
		want      Intent
		wantValid bool
	}{
		{"FAQ", IntentFAQ, true},
		{"faq\n", IntentFAQ, true},
		{"ORDER", IntentOrder, true},
		{"The answer is order.", IntentOrder, true},
		{"ORDER_STATUS", IntentOrder, true},
		{"FAQ or ORDER", IntentFAQ, true},
		{"ORDER, not FAQ", IntentFAQ, true},
		{"MAYBE", IntentInvalid, false},
		{"", IntentInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, valid := Normalize(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantValid, valid)
		})
	}
}

func TestNormalizeExact(t *testing.T) {
	tests := []struct {
		raw       string
		want      Intent
		wantValid bool
	}{
		{"FAQ", IntentFAQ, true},
		{" order.\n", IntentOrder, true},
		{"ORDER_STATUS", IntentInvalid, false},
		{"FAQ or ORDER", IntentInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, valid := MatchExact.Normalize(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantValid, valid)
		})
	}
}

func TestMatchMode_Label(t *testing.T) {
	tests := []struct {
		mode      MatchMode
		raw       string
		want      string
		wantValid bool
	}{
		{MatchContains, "order_status", "ORDER", true},
		{MatchContains, " faq ", "FAQ", true},
		{MatchContains, " I don't know ", "I DON'T KNOW", false},
		{MatchExact, "order_status", "ORDER_STATUS", false},
		{MatchExact, "Order.", "ORDER", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.raw, func(t *testing.T) {
			got, valid := tt.mode.Label(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantValid, valid)
		})
	}
}

func TestFallbackIntent(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"Where is ord999", IntentOrder},
		{"WHERE IS ORD999", IntentOrder},
		{"Has my shipment left?", IntentOrder},
		{"Any tracking number?", IntentOrder},
		{"What's the status?", IntentOrder},
		{"My lab results please", IntentOrder},
		{"I want to place an ORDER", IntentOrder},
		{"What are your hours?", IntentFAQ},
		{"", IntentFAQ},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := FallbackIntent(tt.query)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FallbackIntent(tt.query))
		})
	}
}
