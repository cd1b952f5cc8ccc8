package evaluation

const (
	StatusCorrect Status = "CORRECT"
	StatusWrong   Status = "WRONG"
	StatusInvalid Status = "INVALID"
	StatusError   Status = "ERROR"
)

// Log prefixes
const (
	LogPrefixEvaluate = "internal.evaluation.Evaluate"
	LogPrefixRun      = "internal.evaluation.Run"
)

// Weighted score
const (
	accuracyWeight = 0.7
	latencyWeight  = 0.3
)

const (
	errorPrefix     = "ERROR: "
	queryPreviewLen = 35
)
