package rescue

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x"
)

type transferStyle int

const (
	// handshake requires the new holder to accept the role.
	handshake transferStyle = iota
	// immediate reassigns the role in a single step.
	immediate
)

// role is an authorization slot of an instance that is held by a single
// address. Only the current holder can pass the role on.
type role struct {
	name    string
	style   transferStyle
	holder  *weave.Address
	pending *weave.Address

	// pendingName and title are used in handshake error messages.
	pendingName string
	title       string
}

func ownerRole(inst *Instance) role {
	return role{
		name:        "owner",
		style:       handshake,
		holder:      &inst.Owner,
		pending:     &inst.PendingOwner,
		pendingName: "newOwner",
		title:       "ownership",
	}
}

func committeeRole(inst *Instance) role {
	return role{
		name:   "committee",
		style:  immediate,
		holder: &inst.Committee,
	}
}

// authorize returns an error if the current holder of the role did not sign
// the transaction. A role without a holder cannot be used.
func (r role) authorize(ctx weave.Context, auth x.Authenticator) error {
	if len(*r.holder) == 0 || !auth.HasAddress(ctx, *r.holder) {
		return errors.Wrapf(errors.ErrUnauthorized, "caller is not the %s", r.name)
	}
	return nil
}

// propose sets the pending holder of a handshake role. Proposing again
// replaces the previous proposal.
func (r role) propose(ctx weave.Context, auth x.Authenticator, next weave.Address) error {
	if r.style != handshake {
		return errors.Wrapf(errors.ErrHuman, "%s role is reassigned immediately", r.name)
	}
	if err := r.authorize(ctx, auth); err != nil {
		return err
	}
	if len(next) == 0 {
		return errors.Wrapf(errors.ErrEmpty, "new %s is the zero address", r.name)
	}
	*r.pending = next
	return nil
}

// accept completes the handshake. It must be signed by the pending holder.
// The previous holder is returned.
func (r role) accept(ctx weave.Context, auth x.Authenticator) (weave.Address, error) {
	if r.style != handshake {
		return nil, errors.Wrapf(errors.ErrHuman, "%s role is reassigned immediately", r.name)
	}
	if len(*r.pending) == 0 || !auth.HasAddress(ctx, *r.pending) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "must be %s to accept %s", r.pendingName, r.title)
	}
	prev := *r.holder
	*r.holder = *r.pending
	*r.pending = nil
	return prev, nil
}

// reassign immediately passes the role to given address. An empty address
// resigns the role.
func (r role) reassign(ctx weave.Context, auth x.Authenticator, next weave.Address) (weave.Address, error) {
	if r.style != immediate {
		return nil, errors.Wrapf(errors.ErrHuman, "%s role requires a handshake", r.name)
	}
	if err := r.authorize(ctx, auth); err != nil {
		return nil, err
	}
	prev := *r.holder
	*r.holder = next
	return prev, nil
}

// reset hands the role to given address and drops any pending proposal.
func (r role) reset(ctx weave.Context, auth x.Authenticator, to weave.Address) (weave.Address, error) {
	if err := r.authorize(ctx, auth); err != nil {
		return nil, err
	}
	prev := *r.holder
	*r.holder = to
	if r.pending != nil {
		*r.pending = nil
	}
	return prev, nil
}
