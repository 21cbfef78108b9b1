package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// StudyTypeSingle is the only study type the client creates.
const StudyTypeSingle = "SINGLE"

// Study transition actions. The client only sends ActionPublish.
const (
	ActionPublish  = "PUBLISH"
	ActionStart    = "START"
	ActionPause    = "PAUSE"
	ActionStop     = "STOP"
	ActionComplete = "COMPLETE"
)

// CostRequest is the body of POST /study-cost-calculator/.
type CostRequest struct {
	StudyType            string `json:"study_type"`
	Reward               int64  `json:"reward"` // minor currency units
	TotalAvailablePlaces int    `json:"total_available_places"`
}

// CostResponse is the reply of the cost calculator. TotalCost is in minor units;
// decimal accepts both JSON numbers and quoted numbers.
type CostResponse struct {
	TotalCost decimal.Decimal `json:"total_cost"`
}

// CreateStudyRequest is the fixed-shape body of POST /studies/.
type CreateStudyRequest struct {
	PublishAt               *string  `json:"publish_at"`
	Name                    string   `json:"name"`
	InternalName            string   `json:"internal_name"`
	Description             string   `json:"description"`
	ExternalStudyURL        string   `json:"external_study_url"`
	CompletionCode          string   `json:"completion_code"`
	CallbackURL             string   `json:"callback_url"`
	ProlificIDOption        string   `json:"prolific_id_option"`
	CompletionOption        string   `json:"completion_option"`
	StudyType               string   `json:"study_type"`
	DeviceCompatibility     []string `json:"device_compatibility"`
	PeripheralRequirements  []string `json:"peripheral_requirements"`
	EligibilityRequirements []any    `json:"eligibility_requirements"`
	TotalAvailablePlaces    int      `json:"total_available_places"`
	EstimatedCompletionTime int      `json:"estimated_completion_time"`
	MaximumAllowedTime      int      `json:"maximum_allowed_time"`
	Reward                  int64    `json:"reward"` // minor currency units
	CustomScreeningChecked  bool     `json:"custom_screening_checked"`
}

// TransitionRequest is the body of POST /studies/{id}/transition/.
type TransitionRequest struct {
	Action string `json:"action"`
}

// Study is a study record as returned by the platform.
// Raw keeps every field of the payload, including the ones Study does not model.
type Study struct {
	Raw                     map[string]any `json:"-"`
	Name                    string         `json:"name"`
	InternalName            string         `json:"internal_name,omitempty"`
	Description             string         `json:"description,omitempty"`
	ExternalStudyURL        string         `json:"external_study_url,omitempty"`
	CompletionCode          string         `json:"completion_code,omitempty"`
	Status                  string         `json:"status,omitempty"`
	URL                     string         `json:"url,omitempty"`
	ID                      int64          `json:"id"`
	Reward                  int64          `json:"reward"`
	TotalAvailablePlaces    int            `json:"total_available_places"`
	EstimatedCompletionTime int            `json:"estimated_completion_time"`
}

type studyFields Study

// UnmarshalJSON decodes the typed fields and keeps the full payload in Raw.
func (s *Study) UnmarshalJSON(data []byte) error {
	var fields studyFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Study(fields)
	s.Raw = raw
	return nil
}

// SetURL sets the client-side study link on both the typed and the raw view.
func (s *Study) SetURL(url string) {
	s.URL = url
	if s.Raw == nil {
		s.Raw = make(map[string]any)
	}
	s.Raw["url"] = url
}
