package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
	LogPrefixResolve  = "internal.router.Resolve"
)

// PromptClassify is the routing prompt. The query is embedded verbatim.
const PromptClassify = `You are a routing system for a veterinary clinic customer service bot.

Classify this customer query into ONLY ONE category:
- FAQ: General questions about hours, services, pricing, appointments, location, or policies
- ORDER: Questions about prescription orders, lab results, test results, or supply orders

Query: %s

Respond with ONLY one word: FAQ or ORDER`

// Match modes for the normalizer
const (
	MatchContains MatchMode = "contains"
	MatchExact    MatchMode = "exact"
)

// Fallback heuristic
var (
	fallbackOrderKeywords = []string{"order", "tracking", "shipment", "status", "lab"}
)

// Error messages
const (
	ErrMsgLLMCallFailed = "LLM call failed, using keyword fallback"
	ErrMsgAmbiguous     = "Unusable LLM output, using keyword fallback"
)
