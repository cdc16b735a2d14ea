package linkedin

import (
	"context"
	"errors"

	"candidatescout/internal/candidate"
)

var (
	ErrMaxAttempts        = errors.New("linkedin: exhausted login attempts")
	ErrInvalidCredentials = errors.New("linkedin: invalid credentials, did not land on the feed after login")
	ErrLoginStatus        = errors.New("linkedin: unexpected login status")
	ErrTokenNotFound      = errors.New("linkedin: could not find login token")
)

const (
	report_login          = "client.login"
	report_search_page    = "client.search-page"
	report_search_persist = "client.search-persist"
	report_profile        = "client.profile"
	report_profile_field  = "client.profile-field"
	report_search_count   = "client.search-count"
)

type Credentials struct {
	Email    string
	Password string
}

// SearchFilter describes a people search.
type SearchFilter struct {
	Keywords []string
	// 0 means no minimum.
	MinExperience int
	// empty means anywhere.
	Location    string
	TargetCount int
}

type SearchStatus int

const (
	// SearchComplete means the target count was reached or the results ran out.
	SearchComplete SearchStatus = iota
	// SearchPartial means pagination stopped early, see SearchResult.Reason.
	SearchPartial
	// SearchFailed means a candidate could not be persisted.
	SearchFailed
)

func (s SearchStatus) String() string {
	switch s {
	case SearchComplete:
		return "complete"
	case SearchPartial:
		return "partial"
	case SearchFailed:
		return "failed"
	}
	return "unknown"
}

type SearchResult struct {
	Status SearchStatus
	// Reason is nil when Status is SearchComplete.
	Reason     error
	Candidates []candidate.Candidate
	// Pages is the number of result pages fetched.
	Pages int
}

// Persister stores every candidate as soon as it is extracted.
type Persister interface {
	Upsert(ctx context.Context, c candidate.Candidate) error
}
