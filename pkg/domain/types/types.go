package types

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// UserID is the chat platform's numeric user identifier.
type UserID int64

func (x UserID) String() string {
	return strconv.FormatInt(int64(x), 10)
}

func (x UserID) Validate() error {
	if x == EmptyUserID {
		return goerr.New("empty user ID")
	}
	return nil
}

const EmptyUserID UserID = 0

// ChannelID is the chat platform's numeric channel identifier.
type ChannelID int64

func (x ChannelID) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// Campus is one of the three exam campuses.
type Campus string

const (
	CampusPilani    Campus = "Pilani"
	CampusGoa       Campus = "Goa"
	CampusHyderabad Campus = "Hyderabad"
)

func (x Campus) String() string {
	return string(x)
}

func (x Campus) Validate() error {
	switch x {
	case CampusPilani, CampusGoa, CampusHyderabad:
		return nil
	}
	return goerr.New("invalid campus", goerr.V("campus", x))
}

// NormalizeCampus maps free-text campus input to its canonical value.
// The second return is false when the input names no known campus.
func NormalizeCampus(input string) (Campus, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "pilani":
		return CampusPilani, true
	case "goa":
		return CampusGoa, true
	case "hyderabad":
		return CampusHyderabad, true
	}
	return "", false
}

func AllCampuses() []Campus {
	return []Campus{CampusPilani, CampusGoa, CampusHyderabad}
}

// Scenario is a named prediction variant.
type Scenario string

const (
	ScenarioWorst      Scenario = "worst"
	ScenarioMostLikely Scenario = "most-likely"
	ScenarioBest       Scenario = "best"
)

func (x Scenario) String() string {
	return string(x)
}

func (x Scenario) Validate() error {
	switch x {
	case ScenarioWorst, ScenarioMostLikely, ScenarioBest:
		return nil
	}
	return goerr.New("invalid scenario", goerr.V("scenario", x))
}

func AllScenarios() []Scenario {
	return []Scenario{ScenarioWorst, ScenarioMostLikely, ScenarioBest}
}

// ParseScenario maps free-text scenario input to its canonical value.
func ParseScenario(input string) (Scenario, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "worst", "worst-case", "worst_case":
		return ScenarioWorst, true
	case "most-likely", "most_likely", "likely", "most-likely-case", "most_likely_case":
		return ScenarioMostLikely, true
	case "best", "best-case", "best_case":
		return ScenarioBest, true
	}
	return "", false
}

// RenderOp tags one render routine. Each op owns an independent bounded
// cache.
type RenderOp string

const (
	RenderOpCampusTrend RenderOp = "campus_trend"
	RenderOpBranchTrend RenderOp = "branch_trend"
	RenderOpYearTable   RenderOp = "year_table"
	RenderOpPrediction  RenderOp = "prediction"
)

func (x RenderOp) String() string {
	return string(x)
}
