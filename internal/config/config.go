package config

import "time"

const (
	// Ack codes
	AckCodeLength      = 10
	AckCodeMaxAttempts = 5

	// Intake
	MaxSummaryLength = 100
	DefaultCategory  = "general"

	// Session tokens
	TokenTTL  = 72 * time.Hour
	JWTIssuer = "aegiswhistle-service"

	// Demo credentials. These are a demo mock, not a trust boundary; real
	// authentication is delegated to the hosted identity provider.
	OfficerUsername      = "ethics@aegiswhistle.com"
	OfficerPassword      = "Ethics123!"
	InvestigatorUsername = "investigator@aegiswhistle.com"
	InvestigatorPassword = "Investigate456!"
)

// CategoryWeights order the officer's case list. Unknown categories weigh 0.
var CategoryWeights = map[string]int{
	"fraud":      250,
	"harassment": 250,
	"policy":     50,
	"general":    5,
	"other":      5,
}
