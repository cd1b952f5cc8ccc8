package evaluation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoCases is returned when a cases file holds no usable case.
var ErrNoCases = errors.New("no test cases")

// DefaultCases returns the built-in labelled queries, ten per intent.
func DefaultCases() []TestCase {
	return []TestCase{
		{Query: "What time do you close on Saturday?", Expected: "FAQ"},
		{Query: "How much does a wellness exam cost?", Expected: "FAQ"},
		{Query: "Do you offer emergency services?", Expected: "FAQ"},
		{Query: "Where is your clinic located?", Expected: "FAQ"},
		{Query: "Can I book an appointment online?", Expected: "FAQ"},
		{Query: "What services do you provide?", Expected: "FAQ"},
		{Query: "Are you open on Sunday?", Expected: "FAQ"},
		{Query: "How much is a dental cleaning?", Expected: "FAQ"},
		{Query: "What's your emergency number?", Expected: "FAQ"},
		{Query: "How can I contact you?", Expected: "FAQ"},

		{Query: "Where is my order ORD123?", Expected: "ORDER"},
		{Query: "Is order ORD456 ready for pickup?", Expected: "ORDER"},
		{Query: "Can you check the status of ORD789?", Expected: "ORDER"},
		{Query: "When will my prescription ORD321 be ready?", Expected: "ORDER"},
		{Query: "Has ORD123 shipped yet?", Expected: "ORDER"},
		{Query: "I'm checking on my lab results for order ORD456", Expected: "ORDER"},
		{Query: "What's happening with order ORD789?", Expected: "ORDER"},
		{Query: "Track my order ORD321", Expected: "ORDER"},
		{Query: "Status of ORD123 please", Expected: "ORDER"},
		{Query: "Where's ORD456?", Expected: "ORDER"},
	}
}

// LoadCases reads test cases from a YAML list. An empty path returns DefaultCases.
func LoadCases(path string) ([]TestCase, error) {
	if path == "" {
		return DefaultCases(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}

	var cases []TestCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse cases %s: %w", path, err)
	}

	for i, c := range cases {
		if strings.TrimSpace(c.Query) == "" || strings.TrimSpace(c.Expected) == "" {
			return nil, fmt.Errorf("case %d in %s: query and expected are required", i+1, path)
		}
		cases[i].Expected = strings.ToUpper(strings.TrimSpace(c.Expected))
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCases)
	}
	return cases, nil
}
