package workflow

import (
	"fmt"
	"strings"
	"time"
)

// Rule describes one transition. Guarded rules are enforced in every mode, the others
// only when the machine is strict.
type Rule struct {
	From    []Status
	To      Status
	Guarded bool
}

type Rules map[Action]Rule

// RequestRules drive leave and overtime requests:
// pending -> department_approved -> approved, pending|department_approved -> rejected.
var RequestRules = Rules{
	ActionDepartmentApprove: {From: []Status{StatusPending}, To: StatusDepartmentApproved, Guarded: true},
	ActionApprove:           {From: []Status{StatusDepartmentApproved}, To: StatusApproved},
	ActionReject:            {From: []Status{StatusPending, StatusDepartmentApproved}, To: StatusRejected},
}

// ReportRules drive weekly work reports: draft -> submitted -> approved|rejected.
var ReportRules = Rules{
	ActionSubmit:  {From: []Status{StatusDraft}, To: StatusSubmitted, Guarded: true},
	ActionApprove: {From: []Status{StatusSubmitted}, To: StatusApproved},
	ActionReject:  {From: []Status{StatusSubmitted}, To: StatusRejected},
}

type Machine struct {
	rules  Rules
	strict bool
	now    func() time.Time
}

func NewMachine(rules Rules, strict bool) *Machine {
	return &Machine{
		rules:  rules,
		strict: strict,
		now:    time.Now,
	}
}

// WithClock replaces the time source used to stamp decision dates.
func (m *Machine) WithClock(now func() time.Time) *Machine {
	m.now = now
	return m
}

func (m *Machine) Strict() bool {
	return m.strict
}

// Can reports whether action may be applied to a record in its current state.
func (m *Machine) Can(a Approval, action Action) bool {
	return m.check(a, action) == nil
}

func (m *Machine) check(a Approval, action Action) error {
	rule, ok := m.rules[action]
	if !ok {
		return fmt.Errorf("%w: %s is not part of this workflow", ErrInvalidTransition, action)
	}
	if !rule.Guarded && !m.strict {
		return nil
	}
	for _, from := range rule.From {
		if a.Status == from {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, a.Status)
}

func (m *Machine) today() time.Time {
	y, mo, d := m.now().UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// Submit moves a draft report to submitted and stamps the submission date.
func (m *Machine) Submit(a *Approval) error {
	if err := m.check(*a, ActionSubmit); err != nil {
		return err
	}
	today := m.today()
	a.Status = m.rules[ActionSubmit].To
	a.SubmittedAt = &today
	return nil
}

// DepartmentApprove records the first-stage sign-off. Only valid from pending.
func (m *Machine) DepartmentApprove(a *Approval, approverID string) error {
	if strings.TrimSpace(approverID) == "" {
		return ErrActorRequired
	}
	if err := m.check(*a, ActionDepartmentApprove); err != nil {
		return err
	}
	today := m.today()
	a.Status = m.rules[ActionDepartmentApprove].To
	a.DepartmentApprovedBy = &approverID
	a.DepartmentApprovedAt = &today
	return nil
}

// Approve records the final approval. In permissive mode the prior status is not checked,
// so approving an already approved record only rewrites the approver and date.
func (m *Machine) Approve(a *Approval, approverID string) error {
	if strings.TrimSpace(approverID) == "" {
		return ErrActorRequired
	}
	if err := m.check(*a, ActionApprove); err != nil {
		return err
	}
	today := m.today()
	a.Status = m.rules[ActionApprove].To
	a.ApprovedBy = &approverID
	a.ApprovedAt = &today
	return nil
}

// Reject records a rejection with its mandatory reason.
func (m *Machine) Reject(a *Approval, rejecterID, reason string) error {
	if strings.TrimSpace(rejecterID) == "" {
		return ErrActorRequired
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	if err := m.check(*a, ActionReject); err != nil {
		return err
	}
	today := m.today()
	a.Status = m.rules[ActionReject].To
	a.RejectedBy = &rejecterID
	a.RejectedAt = &today
	a.RejectionReason = &reason
	return nil
}
