// Package recommend turns dimension scores and individual low scores into
// a ranked list of focus areas. Output is deterministic and purely
// derived: same scores in, same recommendations out, in the same order.
package recommend

// dimensionRecommendations is the fixed per-dimension action catalog used
// for HIGH and MEDIUM focus areas, keyed by dimension id.
var dimensionRecommendations = map[string][]string{
	"workflow": {
		"Implement regular flow metrics tracking and review",
		"Establish clear WIP limits and flow policies",
		"Create visual management boards for bottleneck identification",
		"Set up dependency tracking and escalation processes",
	},
	"rituals": {
		"Improve ceremony preparation and facilitation",
		"Increase stakeholder engagement in demos and reviews",
		"Establish regular retrospective action tracking",
		"Create ceremony effectiveness feedback loops",
	},
	"visibility": {
		"Implement single source of truth for all work tracking",
		"Establish clear communication cadences with stakeholders",
		"Create documentation standards and knowledge sharing practices",
		"Set up transparent progress reporting mechanisms",
	},
	"execution": {
		"Define and implement clear Definition of Ready/Done",
		"Establish quality gates and testing practices",
		"Create commitment planning and tracking processes",
		"Implement defect prevention and root cause analysis",
	},
	"improvement": {
		"Establish systematic retrospective action implementation",
		"Create experimentation and learning frameworks",
		"Implement feedback loops and measurement practices",
		"Build celebration and knowledge sharing rituals",
	},
}

// genericRecommendations serves any dimension id missing from the catalog.
var genericRecommendations = []string{
	"Focus on consistent application of best practices",
	"Establish measurement and feedback mechanisms",
	"Create team learning and development plans",
}

// recommendationsFor returns the catalog entry for a dimension, or the
// generic fallback for unknown ids. The returned slice is a copy.
func recommendationsFor(dimensionID string) []string {
	if recs, ok := dimensionRecommendations[dimensionID]; ok {
		return append([]string(nil), recs...)
	}
	return append([]string(nil), genericRecommendations...)
}
