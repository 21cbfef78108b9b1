package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/studysync/pkg/api"
)

// StudyStatus is the platform-side state of a study.
type StudyStatus string

const (
	StatusUnpublished    StudyStatus = "UNPUBLISHED"
	StatusScheduled      StudyStatus = "SCHEDULED"
	StatusActivated      StudyStatus = "ACTIVATED"
	StatusPaused         StudyStatus = "PAUSED"
	StatusAwaitingReview StudyStatus = "AWAITING_REVIEW"
	StatusCompleted      StudyStatus = "COMPLETED"
)

var statusRank = map[StudyStatus]int{
	StatusUnpublished:    0,
	StatusScheduled:      1,
	StatusActivated:      2,
	StatusPaused:         2,
	StatusAwaitingReview: 3,
	StatusCompleted:      4,
}

// Rank returns the position of the status in the forward-only lifecycle, -1 if unknown.
func (s StudyStatus) Rank() int {
	rank, ok := statusRank[s]
	if !ok {
		return -1
	}
	return rank
}

// CanTransitionTo reports whether next does not move the study backwards.
// ACTIVATED and PAUSED share a rank, so a study can be paused and resumed.
func (s StudyStatus) CanTransitionTo(next StudyStatus) bool {
	from, to := s.Rank(), next.Rank()
	if from < 0 || to < 0 {
		return false
	}
	return to >= from && s != next
}

// Уровни доступа на git-хостинге (шкала GitLab)
const (
	PermissionGuest      = 10
	PermissionReporter   = 20
	PermissionDeveloper  = 30 // может пушить в незащищенные ветки
	PermissionMaintainer = 30
	PermissionOwner      = 50
)

// NeedsFork reports whether the current user must fork before syncing.
// An unknown permission level counts as no write access.
func NeedsFork(permissionLevel *int) bool {
	return permissionLevel == nil || *permissionLevel < PermissionDeveloper
}

// SyncResult is the outcome of a single project sync.
type SyncResult int

const (
	SyncFailure SyncResult = iota
	SyncSuccess
)

func (r SyncResult) String() string {
	if r == SyncSuccess {
		return "success"
	}
	return "failure"
}

// StudyDraft holds the user-entered fields of a new study.
type StudyDraft struct {
	Reward           decimal.Decimal
	Title            string
	InternalName     string
	Description      string
	ExternalStudyURL string
	CompletionCode   string
	Participants     int
	DurationMinutes  int
}

// Tags is a set of tags; null entries and duplicates are dropped on decode.
type Tags []string

// UnmarshalJSON decodes a JSON array that may contain nulls.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var raw []*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = NewTags(raw...)
	return nil
}

// NewTags builds a tag set, skipping nil and empty values.
func NewTags(values ...*string) Tags {
	seen := make(map[string]bool, len(values))
	tags := make(Tags, 0, len(values))
	for _, v := range values {
		if v == nil || *v == "" || seen[*v] {
			continue
		}
		seen[*v] = true
		tags = append(tags, *v)
	}
	return tags
}

// Project представляет исследование: удаленные атрибуты платформы плюс локальное состояние
// Remote-поля обновляются только из ответов платформы, LocalFolder и LastSync меняет только синхронизация
type Project struct {
	LastSync         *time.Time      `json:"last_sync,omitempty"`
	RemoteID         *int64          `json:"remote_id,omitempty"`
	PermissionLevel  *int            `json:"permissions,omitempty"`
	Extra            map[string]any  `json:"extra,omitempty"`  // локальные расширения
	Remote           map[string]any  `json:"remote,omitempty"` // исходный payload платформы
	Reward           decimal.Decimal `json:"reward"`
	LocalID          string          `json:"id"` // "namespace/name"
	Title            string          `json:"title"`
	InternalName     string          `json:"internal_name,omitempty"`
	Description      string          `json:"description"`
	ExternalStudyURL string          `json:"external_study_url"`
	CompletionCode   string          `json:"completion_code"`
	URL              string          `json:"url"`
	RepoURL          string          `json:"repo_url,omitempty"`
	Visibility       string          `json:"visibility,omitempty"`
	LocalFolder      string          `json:"local_root,omitempty"`
	Status           StudyStatus     `json:"status,omitempty"`
	Tags             Tags            `json:"tags,omitempty"`
	ParticipantCount int             `json:"participants"`
	DurationMinutes  int             `json:"duration"`
}

// ProjectFromStudy builds a project record from a platform study payload.
func ProjectFromStudy(localID string, study *api.Study) *Project {
	p := &Project{LocalID: localID}
	p.applyStudy(study)
	return p
}

// WithStudy returns a copy with the remote fields refreshed from study.
// Local-only state (folder, last sync, extensions, repository link) is kept.
func (p *Project) WithStudy(study *api.Study) *Project {
	cp := *p
	cp.Extra = maps.Clone(p.Extra)
	cp.Tags = slices.Clone(p.Tags)
	cp.applyStudy(study)
	return &cp
}

func (p *Project) applyStudy(study *api.Study) {
	id := study.ID
	p.RemoteID = &id
	p.Title = study.Name
	p.InternalName = study.InternalName
	p.Description = study.Description
	p.ExternalStudyURL = study.ExternalStudyURL
	p.CompletionCode = study.CompletionCode
	p.ParticipantCount = study.TotalAvailablePlaces
	p.DurationMinutes = study.EstimatedCompletionTime
	p.Reward = FromMinorUnits(decimal.NewFromInt(study.Reward))
	p.Status = StudyStatus(study.Status)
	if study.URL != "" {
		p.URL = study.URL
	}
	p.Remote = study.Raw
}

// ApplyRepo copies the hosting-side attributes of a repository onto the project.
func (p *Project) ApplyRepo(repo *api.RepoProject) {
	p.RepoURL = repo.HTTPURLToRepo
	p.Visibility = repo.Visibility
	if repo.Description != "" && p.Description == "" {
		p.Description = repo.Description
	}
	tags := make([]*string, 0, len(repo.TagList))
	for i := range repo.TagList {
		tags = append(tags, &repo.TagList[i])
	}
	p.Tags = NewTags(tags...)
	if repo.Permissions != nil {
		level := 0
		if a := repo.Permissions.ProjectAccess; a != nil && a.AccessLevel > level {
			level = a.AccessLevel
		}
		if a := repo.Permissions.GroupAccess; a != nil && a.AccessLevel > level {
			level = a.AccessLevel
		}
		p.PermissionLevel = &level
	}
}

// Created reports whether the study exists on the platform.
func (p *Project) Created() bool {
	return p.RemoteID != nil
}

// SubmissionsURL returns the page listing participant submissions.
func (p *Project) SubmissionsURL() string {
	if p.URL == "" {
		return ""
	}
	return p.URL + "submissions/"
}

// FieldNotFoundError is returned by Lookup when no layer has the field.
type FieldNotFoundError struct {
	Field   string
	Project string
}

func (e *FieldNotFoundError) Error() string {
	// без id в описании: id сам мог не найтись
	if e.Field == "id" {
		return `no field "id" in project`
	}
	return fmt.Sprintf("no field %q in project %q", e.Field, e.Project)
}

// Lookup resolves a field by its JSON name: the record's own state first,
// then the local extension map, then the raw remote payload.
func (p *Project) Lookup(name string) (any, error) {
	if v, ok := p.ownField(name); ok {
		return v, nil
	}
	if v, ok := p.Extra[name]; ok {
		return v, nil
	}
	if v, ok := p.Remote[name]; ok {
		return v, nil
	}
	return nil, &FieldNotFoundError{Field: name, Project: p.LocalID}
}

func (p *Project) ownField(name string) (any, bool) {
	str := func(s string) (any, bool) { return s, s != "" }
	switch name {
	case "id":
		return str(p.LocalID)
	case "remote_id":
		if p.RemoteID == nil {
			return nil, false
		}
		return *p.RemoteID, true
	case "title":
		return str(p.Title)
	case "internal_name":
		return str(p.InternalName)
	case "description":
		return str(p.Description)
	case "external_study_url":
		return str(p.ExternalStudyURL)
	case "completion_code":
		return str(p.CompletionCode)
	case "url":
		return str(p.URL)
	case "repo_url":
		return str(p.RepoURL)
	case "visibility":
		return str(p.Visibility)
	case "local_root":
		return str(p.LocalFolder)
	case "status":
		return str(string(p.Status))
	case "tags":
		return []string(p.Tags), p.Tags != nil
	case "participants":
		return p.ParticipantCount, true
	case "duration":
		return p.DurationMinutes, true
	case "reward":
		return p.Reward, true
	case "permissions":
		if p.PermissionLevel == nil {
			return nil, false
		}
		return *p.PermissionLevel, true
	case "last_sync":
		if p.LastSync == nil {
			return nil, false
		}
		return *p.LastSync, true
	}
	return nil, false
}

// ToStudyMap returns the platform view of the record: the raw remote payload
// overlaid with the typed remote fields.
func (p *Project) ToStudyMap() map[string]any {
	out := make(map[string]any, len(p.Remote)+10)
	for k, v := range p.Remote {
		out[k] = v
	}
	if p.RemoteID != nil {
		out["id"] = *p.RemoteID
	}
	out["name"] = p.Title
	out["internal_name"] = p.InternalName
	out["description"] = p.Description
	out["external_study_url"] = p.ExternalStudyURL
	out["completion_code"] = p.CompletionCode
	out["total_available_places"] = p.ParticipantCount
	out["estimated_completion_time"] = p.DurationMinutes
	out["reward"] = ToMinorUnits(p.Reward)
	if p.Status != "" {
		out["status"] = string(p.Status)
	}
	if p.URL != "" {
		out["url"] = p.URL
	}
	return out
}
