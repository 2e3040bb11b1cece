package sync

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/vanhoutenbos/golfapp/internal/services/sync Resolver

import (
	"github.com/vanhoutenbos/golfapp/internal/models"
)

// Resolver decides the winning version when a local edit and the server copy
// of the same score diverge. Resolution is a pure function of its inputs:
// the same two versions always produce the same winner and reason, no matter
// which device's batch arrives first.
type Resolver interface {
	Resolve(input *ResolveInput) (*ResolveOutput, error)
}

// ResolveInput contains the two competing versions of one score record
type ResolveInput struct {
	// Local is the version submitted by the client
	Local *models.ScoreRecord

	// Server is the current authoritative version
	Server *models.ScoreRecord

	// Base is the last common ancestor of the two versions, when the client
	// reported which server version it edited; nil disables field merging
	Base *models.ScoreRecord

	// MaxStrokes is the tournament's per-hole stroke cap for validity checks
	MaxStrokes int
}

// ResolveOutput contains the resolution decision
type ResolveOutput struct {
	// Winner is the version to persist; for a field merge it is a new record
	// combining both sides
	Winner *models.ScoreRecord

	// Reason is the rule that decided the conflict
	Reason models.ResolutionReason

	// ServerWon is true when the authoritative record stands and the client
	// must reconcile
	ServerWon bool
}

// resolver implements Resolver
type resolver struct{}

// NewResolver creates a conflict resolver
func NewResolver() *resolver {
	return &resolver{}
}

// Resolve applies the conflict rules in order, first match wins:
//  1. validity override: exactly one valid side wins, both invalid is an error
//  2. official-scorer override
//  3. field merge when both sides changed disjoint fields since the ancestor
//  4. last-edit-wins on the strictly newer timestamp
//  5. deterministic device-id tie-break on exactly equal timestamps
func (r *resolver) Resolve(input *ResolveInput) (*ResolveOutput, error) {
	local, server := input.Local, input.Server

	localValid := validStrokes(local, input.MaxStrokes)
	serverValid := validStrokes(server, input.MaxStrokes)
	switch {
	case !localValid && !serverValid:
		return nil, ErrBothInvalid
	case localValid != serverValid:
		winner, serverWon := local, false
		if serverValid {
			winner, serverWon = server, true
		}
		return &ResolveOutput{Winner: winner, Reason: models.ReasonValidationOverride, ServerWon: serverWon}, nil
	}

	if local.IsOfficial != server.IsOfficial {
		winner, serverWon := local, false
		if server.IsOfficial {
			winner, serverWon = server, true
		}
		return &ResolveOutput{Winner: winner, Reason: models.ReasonOfficialOverride, ServerWon: serverWon}, nil
	}

	if input.Base != nil {
		localChanged := changedFields(input.Base, local)
		serverChanged := changedFields(input.Base, server)
		if len(localChanged) > 0 && len(serverChanged) > 0 && disjoint(localChanged, serverChanged) {
			return &ResolveOutput{
				Winner: mergeFields(local, server, localChanged),
				Reason: models.ReasonFieldMerge,
			}, nil
		}
	}

	localTime := local.ClientTimestamp
	serverTime := server.ClientTimestamp
	switch {
	case localTime.After(serverTime):
		return &ResolveOutput{Winner: local, Reason: models.ReasonLocalNewer}, nil
	case serverTime.After(localTime):
		return &ResolveOutput{Winner: server, Reason: models.ReasonServerNewer, ServerWon: true}, nil
	}

	// Exactly equal timestamps: the lexicographically smaller device id wins.
	// This keeps resolution reproducible across arrival orders.
	if local.DeviceID < server.DeviceID {
		return &ResolveOutput{Winner: local, Reason: models.ReasonLocalNewer}, nil
	}
	return &ResolveOutput{Winner: server, Reason: models.ReasonServerNewer, ServerWon: true}, nil
}

// validStrokes applies the tournament's score-validity rules
func validStrokes(record *models.ScoreRecord, maxStrokes int) bool {
	if record.Strokes < 1 {
		return false
	}
	return maxStrokes <= 0 || record.Strokes <= maxStrokes
}

// mergeable score fields, named after their wire representation
const (
	fieldStrokes           = "strokes"
	fieldPutts             = "putts"
	fieldPenaltyStrokes    = "penalty_strokes"
	fieldFairwayHit        = "fairway_hit"
	fieldGreenInRegulation = "green_in_regulation"
	fieldSandSave          = "sand_save"
	fieldUpAndDown         = "up_and_down"
)

// changedFields lists the score fields a version changed relative to the ancestor
func changedFields(base, record *models.ScoreRecord) map[string]bool {
	changed := make(map[string]bool)
	if record.Strokes != base.Strokes {
		changed[fieldStrokes] = true
	}
	if !equalIntPtr(record.Putts, base.Putts) {
		changed[fieldPutts] = true
	}
	if !equalIntPtr(record.PenaltyStrokes, base.PenaltyStrokes) {
		changed[fieldPenaltyStrokes] = true
	}
	if !equalBoolPtr(record.FairwayHit, base.FairwayHit) {
		changed[fieldFairwayHit] = true
	}
	if !equalBoolPtr(record.GreenInRegulation, base.GreenInRegulation) {
		changed[fieldGreenInRegulation] = true
	}
	if !equalBoolPtr(record.SandSave, base.SandSave) {
		changed[fieldSandSave] = true
	}
	if !equalBoolPtr(record.UpAndDown, base.UpAndDown) {
		changed[fieldUpAndDown] = true
	}
	return changed
}

func disjoint(a, b map[string]bool) bool {
	for field := range a {
		if b[field] {
			return false
		}
	}
	return true
}

// mergeFields combines two divergent versions: the server record is the basis
// and the fields the local side changed are applied on top. The merged record
// keeps the newer client timestamp and that side's device attribution.
func mergeFields(local, server *models.ScoreRecord, localChanged map[string]bool) *models.ScoreRecord {
	merged := *server

	if localChanged[fieldStrokes] {
		merged.Strokes = local.Strokes
	}
	if localChanged[fieldPutts] {
		merged.Putts = local.Putts
	}
	if localChanged[fieldPenaltyStrokes] {
		merged.PenaltyStrokes = local.PenaltyStrokes
	}
	if localChanged[fieldFairwayHit] {
		merged.FairwayHit = local.FairwayHit
	}
	if localChanged[fieldGreenInRegulation] {
		merged.GreenInRegulation = local.GreenInRegulation
	}
	if localChanged[fieldSandSave] {
		merged.SandSave = local.SandSave
	}
	if localChanged[fieldUpAndDown] {
		merged.UpAndDown = local.UpAndDown
	}

	if local.ClientTimestamp.After(server.ClientTimestamp) {
		merged.ClientTimestamp = local.ClientTimestamp
		merged.DeviceID = local.DeviceID
		merged.RecordedBy = local.RecordedBy
	}
	merged.IsOfficial = local.IsOfficial || server.IsOfficial

	return &merged
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
