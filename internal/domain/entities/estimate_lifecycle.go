package entities

import (
	"strings"
	"time"
)

// TransitionKind classifies a status change by the side effect it requires.
type TransitionKind int

const (
	// TransitionNoop is a same-to-same move; nothing is written.
	TransitionNoop TransitionKind = iota
	// TransitionPlain only changes the status.
	TransitionPlain
	// TransitionApprove must provision a Project before the status is committed.
	TransitionApprove
	// TransitionRevokeApproval must delete the linked Project.
	TransitionRevokeApproval
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionNoop:
		return "noop"
	case TransitionPlain:
		return "plain"
	case TransitionApprove:
		return "approve"
	case TransitionRevokeApproval:
		return "revoke_approval"
	}
	return "unknown"
}

// TransitionPlan is the pure decision part of a status change. Executing the side
// effects (project create/delete, persistence) is the caller's job.
type TransitionPlan struct {
	Kind   TransitionKind
	From   EstimateStatus
	To     EstimateStatus
	Reason string
}

// PlanTransition decides what moving e to the given status entails.
func PlanTransition(e Estimate, to EstimateStatus, reason string) (TransitionPlan, error) {
	if !to.Valid() {
		return TransitionPlan{}, ErrInvalidStatus
	}
	plan := TransitionPlan{From: e.Status, To: to, Reason: strings.TrimSpace(reason)}

	switch {
	case e.Status == to:
		plan.Kind = TransitionNoop
	case to == EstimateStatusApproved:
		if e.LinkedProjectID != "" {
			return TransitionPlan{}, ErrApprovalConflict
		}
		plan.Kind = TransitionApprove
	case e.Status == EstimateStatusApproved:
		plan.Kind = TransitionRevokeApproval
	default:
		plan.Kind = TransitionPlain
	}
	return plan, nil
}

// ProjectSpec returns the project an approval provisions.
func (p TransitionPlan) ProjectSpec(e Estimate) ProjectSpec {
	return ProjectSpec{
		Name:        e.Title,
		BudgetValue: e.Total,
		EstimateID:  e.ID,
	}
}

// Apply writes the new status onto e. projectID is the newly created project for
// approvals and ignored otherwise.
//
// A rejection reason is kept when the estimate later leaves rejected; it is only
// replaced by the next rejection.
func (p TransitionPlan) Apply(e *Estimate, projectID string, now time.Time) {
	if p.Kind == TransitionNoop {
		return
	}
	e.Status = p.To
	switch p.Kind {
	case TransitionApprove:
		e.LinkedProjectID = projectID
	case TransitionRevokeApproval:
		e.LinkedProjectID = ""
	}
	if p.To == EstimateStatusRejected {
		e.RejectionReason = p.Reason
	}
	e.UpdatedAt = now
}
