package rescue

import (
	"strconv"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

// CashController allows to manage coins stored by the accounts without the
// need to directly access the bucket.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

func RegisterQuery(qr weave.QueryRouter) {
	NewInstanceBucket().Register("rescueinstances", qr)
	NewFactoryBucket().Register("rescuefactories", qr)
}

// RegisterRoutes registers handlers for rescue message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("rescue", r)

	instances := NewInstanceBucket()
	factories := NewFactoryBucket()
	payable := newPayableCheck(instances, factories)

	r.Handle(&CreateTemplateMsg{}, &createTemplateHandler{
		instances: instances,
	})
	r.Handle(&CreateFactoryMsg{}, &createFactoryHandler{
		instances: instances,
		factories: factories,
	})
	r.Handle(&CreateInstanceMsg{}, &createInstanceHandler{
		auth:      auth,
		instances: instances,
		factories: factories,
	})
	r.Handle(&InitializeMsg{}, &initializeHandler{
		auth:      auth,
		instances: instances,
	})
	r.Handle(&TransferOwnershipMsg{}, &transferOwnershipHandler{
		auth:      auth,
		instances: instances,
	})
	r.Handle(&AcceptOwnershipMsg{}, &acceptOwnershipHandler{
		auth:      auth,
		instances: instances,
	})
	r.Handle(&RenounceOwnershipMsg{}, &renounceOwnershipHandler{
		auth:      auth,
		instances: instances,
	})
	r.Handle(&UpdateCommitteeMsg{}, &updateCommitteeHandler{
		auth:      auth,
		instances: instances,
	})
	r.Handle(&RetrieveFundsMsg{}, &retrieveFundsHandler{
		auth:      auth,
		instances: instances,
		payable:   payable,
		ctrl:      ctrl,
	})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("rescue", &Configuration{}, auth, migration.CurrentAdmin))
}

const (
	tagEvent      = "rescue"
	tagInstanceID = "rescue.instance"
	tagFactoryID  = "rescue.factory"

	eventNewTemplate          = "new_template"
	eventNewFactory           = "new_factory"
	eventNewInstance          = "new_instance"
	eventNewOwnerProposed     = "new_owner_proposed"
	eventOwnershipTransferred = "ownership_transferred"
	eventCommitteeChanged     = "committee_changed"
	eventFundsRetrieved       = "funds_retrieved"
)

// eventTags returns tags describing a single event. Given key value pairs
// are prefixed with the extension name.
func eventTags(event string, kv ...string) []common.KVPair {
	tags := []common.KVPair{
		{Key: []byte(tagEvent), Value: []byte(event)},
	}
	for i := 0; i+1 < len(kv); i += 2 {
		tags = append(tags, common.KVPair{
			Key:   []byte(tagEvent + "." + kv[i]),
			Value: []byte(kv[i+1]),
		})
	}
	return tags
}

type createTemplateHandler struct {
	instances orm.ModelBucket
}

func (h *createTemplateHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg CreateTemplateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createTemplateHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg CreateTemplateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	key, err := instanceSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	template := Instance{
		Metadata:    &weave.Metadata{Schema: 1},
		Initialized: true,
		Address:     InstanceCondition(key).Address(),
	}
	if _, err := h.instances.Put(db, key, &template); err != nil {
		return nil, errors.Wrap(err, "store template")
	}
	weave.GetLogger(ctx).Debug("rescue template created", "id", key)
	return &weave.DeliverResult{
		Data: key,
		Tags: append(eventTags(eventNewTemplate), common.KVPair{Key: []byte(tagInstanceID), Value: key}),
	}, nil
}

type createFactoryHandler struct {
	instances orm.ModelBucket
	factories orm.ModelBucket
}

func (h *createFactoryHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createFactoryHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key, err := factorySeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	factory := Factory{
		Metadata:       &weave.Metadata{Schema: 1},
		Implementation: msg.Implementation,
		Governance:     msg.Governance,
		Address:        FactoryCondition(key).Address(),
	}
	if _, err := h.factories.Put(db, key, &factory); err != nil {
		return nil, errors.Wrap(err, "store factory")
	}
	weave.GetLogger(ctx).Debug("rescue factory created", "id", key, "implementation", msg.Implementation)
	return &weave.DeliverResult{
		Data: key,
		Tags: append(eventTags(eventNewFactory, "governance", msg.Governance.String()),
			common.KVPair{Key: []byte(tagFactoryID), Value: key}),
	}, nil
}

func (h *createFactoryHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateFactoryMsg, error) {
	var msg CreateFactoryMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var template Instance
	if err := h.instances.One(db, msg.Implementation, &template); err != nil {
		return nil, errors.Wrap(err, "cannot load implementation")
	}
	if !template.IsTemplate() {
		return nil, errors.Wrap(errors.ErrInput, "implementation is not a template")
	}
	return &msg, nil
}

type createInstanceHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
	factories orm.ModelBucket
}

func (h *createInstanceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

// Deliver creates a clone of the factory template and initializes it. Both
// operations are part of the same message and are therefore atomic.
func (h *createInstanceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, inst, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key, err := instanceSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	inst.Address = InstanceCondition(key).Address()
	if _, err := h.instances.Put(db, key, inst); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	weave.GetLogger(ctx).Debug("rescue instance created",
		"id", key, "factory", msg.FactoryID, "hacker", inst.Hacker, "committee", inst.Committee)
	tags := eventTags(eventNewInstance,
		"address", inst.Address.String(),
		"hacker", inst.Hacker.String(),
		"committee", inst.Committee.String(),
	)
	tags = append(tags,
		common.KVPair{Key: []byte(tagInstanceID), Value: key},
		common.KVPair{Key: []byte(tagFactoryID), Value: msg.FactoryID},
	)
	return &weave.DeliverResult{Data: key, Tags: tags}, nil
}

func (h *createInstanceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateInstanceMsg, *Instance, error) {
	var msg CreateInstanceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var factory Factory
	if err := h.factories.One(db, msg.FactoryID, &factory); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load factory")
	}
	inst := Instance{
		Metadata:       &weave.Metadata{Schema: 1},
		Implementation: factory.Implementation,
		Factory:        msg.FactoryID,
	}
	if err := initialize(ctx, h.auth, &inst, msg.Hacker, msg.Committee, factory.Governance); err != nil {
		return nil, nil, err
	}
	return &msg, &inst, nil
}

// initialize sets the roles of given instance. An instance can be initialized
// only once and a template is always considered initialized. When no hacker
// address is given, the main signer of the transaction is used.
func initialize(
	ctx weave.Context,
	auth x.Authenticator,
	inst *Instance,
	hacker, committee, governance weave.Address,
) error {
	if inst.Initialized {
		return errors.Wrap(ErrInitialized, "instance is already initialized")
	}
	if len(hacker) == 0 {
		signer := x.MainSigner(ctx, auth)
		if signer == nil {
			return errors.Wrap(errors.ErrUnauthorized, "hacker address is required")
		}
		hacker = signer.Address()
	}
	if len(committee) == 0 {
		return errors.Wrap(errors.ErrEmpty, "must have committee")
	}
	inst.Hacker = hacker
	inst.Owner = hacker
	// The committee takes control only after accepting the owner role.
	inst.PendingOwner = committee
	inst.Committee = committee
	inst.Governance = governance
	inst.Initialized = true
	return nil
}

type initializeHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
}

func (h *initializeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

// Deliver stores the instance with its roles assigned. Instances are
// initialized on creation, so for a stored instance validation fails with
// ErrInitialized.
func (h *initializeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, inst, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.instances.Put(db, msg.InstanceID, inst); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	return &weave.DeliverResult{}, nil
}

func (h *initializeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*InitializeMsg, *Instance, error) {
	var msg InitializeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var inst Instance
	if err := h.instances.One(db, msg.InstanceID, &inst); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load instance")
	}
	if err := initialize(ctx, h.auth, &inst, msg.Hacker, msg.Committee, msg.Governance); err != nil {
		return nil, nil, err
	}
	return &msg, &inst, nil
}

type transferOwnershipHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
}

func (h *transferOwnershipHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *transferOwnershipHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, inst, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.instances.Put(db, msg.InstanceID, inst); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	tags := append(eventTags(eventNewOwnerProposed, "new_owner", inst.PendingOwner.String()),
		common.KVPair{Key: []byte(tagInstanceID), Value: msg.InstanceID})
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *transferOwnershipHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferOwnershipMsg, *Instance, error) {
	var msg TransferOwnershipMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var inst Instance
	if err := h.instances.One(db, msg.InstanceID, &inst); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load instance")
	}
	if err := ownerRole(&inst).propose(ctx, h.auth, msg.NewOwner); err != nil {
		return nil, nil, err
	}
	return &msg, &inst, nil
}

type acceptOwnershipHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
}

func (h *acceptOwnershipHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *acceptOwnershipHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, inst, prev, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.instances.Put(db, msg.InstanceID, inst); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	return &weave.DeliverResult{Tags: ownershipTransferredTags(msg.InstanceID, prev, inst.Owner)}, nil
}

func (h *acceptOwnershipHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AcceptOwnershipMsg, *Instance, weave.Address, error) {
	var msg AcceptOwnershipMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var inst Instance
	if err := h.instances.One(db, msg.InstanceID, &inst); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load instance")
	}
	prev, err := ownerRole(&inst).accept(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, &inst, prev, nil
}

type renounceOwnershipHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
}

func (h *renounceOwnershipHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

// Deliver hands the owner role back to the hacker.
func (h *renounceOwnershipHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, inst, prev, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.instances.Put(db, msg.InstanceID, inst); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	return &weave.DeliverResult{Tags: ownershipTransferredTags(msg.InstanceID, prev, inst.Owner)}, nil
}

func (h *renounceOwnershipHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RenounceOwnershipMsg, *Instance, weave.Address, error) {
	var msg RenounceOwnershipMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var inst Instance
	if err := h.instances.One(db, msg.InstanceID, &inst); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load instance")
	}
	prev, err := ownerRole(&inst).reset(ctx, h.auth, inst.Hacker)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, &inst, prev, nil
}

func ownershipTransferredTags(instanceID []byte, prev, next weave.Address) []common.KVPair {
	return append(eventTags(eventOwnershipTransferred,
		"previous_owner", prev.String(),
		"new_owner", next.String(),
	), common.KVPair{Key: []byte(tagInstanceID), Value: instanceID})
}

type updateCommitteeHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
}

func (h *updateCommitteeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *updateCommitteeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, inst, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.instances.Put(db, msg.InstanceID, inst); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	tags := append(eventTags(eventCommitteeChanged, "committee", inst.Committee.String()),
		common.KVPair{Key: []byte(tagInstanceID), Value: msg.InstanceID})
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *updateCommitteeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateCommitteeMsg, *Instance, error) {
	var msg UpdateCommitteeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var inst Instance
	if err := h.instances.One(db, msg.InstanceID, &inst); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load instance")
	}
	if _, err := committeeRole(&inst).reassign(ctx, h.auth, msg.Committee); err != nil {
		return nil, nil, err
	}
	return &msg, &inst, nil
}

type retrieveFundsHandler struct {
	auth      x.Authenticator
	instances orm.ModelBucket
	payable   payableCheck
	ctrl      CashController
}

func (h *retrieveFundsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

// Deliver releases the whole balance of a single ticker. Transfers are done
// in a fixed order: hacker, committee, governance and the beneficiary.
func (h *retrieveFundsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, inst, pay, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	transfers := []struct {
		name   string
		dest   weave.Address
		amount coin.Coin
	}{
		{name: "hacker", dest: inst.Hacker, amount: pay.Hacker},
		{name: "committee", dest: inst.Committee, amount: pay.Committee},
		{name: "governance", dest: inst.Governance, amount: pay.Governance},
		{name: "beneficiary", dest: msg.Beneficiary, amount: pay.Remainder},
	}
	for _, t := range transfers {
		if !t.amount.IsPositive() {
			continue
		}
		if err := h.ctrl.MoveCoins(db, inst.Address, t.dest, t.amount); err != nil {
			return nil, errors.Wrapf(ErrSend, "%s: %s", t.name, err)
		}
	}

	weave.GetLogger(ctx).Debug("rescue funds retrieved",
		"instance", msg.InstanceID,
		"beneficiary", msg.Beneficiary,
		"hacker", pay.Hacker.String(),
		"committee", pay.Committee.String(),
		"governance", pay.Governance.String(),
		"remainder", pay.Remainder.String())

	tags := eventTags(eventFundsRetrieved,
		"beneficiary", msg.Beneficiary.String(),
		"ticker", pay.Remainder.Ticker,
		"bounty_bps", strconv.FormatUint(uint64(pay.BountyBps), 10),
		"committee_tip_bps", strconv.FormatUint(uint64(pay.CommitteeTipBps), 10),
		"governance_tip_bps", strconv.FormatUint(uint64(pay.GovernanceTipBps), 10),
	)
	tags = append(tags, common.KVPair{Key: []byte(tagInstanceID), Value: msg.InstanceID})
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *retrieveFundsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RetrieveFundsMsg, *Instance, *payout, error) {
	var msg RetrieveFundsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var inst Instance
	if err := h.instances.One(db, msg.InstanceID, &inst); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load instance")
	}
	if err := ownerRole(&inst).authorize(ctx, h.auth); err != nil {
		return nil, nil, nil, err
	}
	if err := checkShares(msg.BountyBps, msg.CommitteeTipBps, msg.GovernanceTipBps); err != nil {
		return nil, nil, nil, err
	}

	ticker, err := resolveTicker(db, msg.Ticker)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "ticker")
	}
	balance, err := h.balance(db, inst.Address, ticker)
	if err != nil {
		return nil, nil, nil, err
	}
	if !balance.IsPositive() {
		if msg.Ticker == "" {
			return nil, nil, nil, errors.Wrapf(errors.ErrEmpty, "no native %s coins in the contract", ticker)
		}
		return nil, nil, nil, errors.Wrapf(errors.ErrEmpty, "no %s tokens in the contract", ticker)
	}

	if len(msg.Beneficiary) == 0 {
		return nil, nil, nil, errors.Wrap(errors.ErrEmpty, "cannot send to 0 address")
	}
	if msg.GovernanceTipBps > 0 && len(inst.Governance) == 0 {
		return nil, nil, nil, errors.Wrap(errors.ErrEmpty, "cannot tip 0 address")
	}

	// A resigned committee is not paid and its share is released to the
	// beneficiary.
	committeeTip := msg.CommitteeTipBps
	if len(inst.Committee) == 0 {
		committeeTip = 0
	}
	pay, err := splitBalance(balance, msg.BountyBps, committeeTip, msg.GovernanceTipBps)
	if err != nil {
		return nil, nil, nil, err
	}

	recipients := []struct {
		dest   weave.Address
		amount coin.Coin
	}{
		{dest: inst.Hacker, amount: pay.Hacker},
		{dest: inst.Committee, amount: pay.Committee},
		{dest: inst.Governance, amount: pay.Governance},
		{dest: msg.Beneficiary, amount: pay.Remainder},
	}
	for _, r := range recipients {
		if !r.amount.IsPositive() {
			continue
		}
		if err := h.payable.check(db, r.dest); err != nil {
			return nil, nil, nil, err
		}
	}
	return &msg, &inst, pay, nil
}

// balance returns the amount of given ticker that is owned by the address.
func (h *retrieveFundsHandler) balance(db weave.KVStore, addr weave.Address, ticker string) (coin.Coin, error) {
	coins, err := h.ctrl.Balance(db, addr)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err), errors.ErrEmpty.Is(err):
		// No wallet means no funds.
		return coin.NewCoin(0, 0, ticker), nil
	default:
		return coin.Coin{}, errors.Wrap(err, "balance")
	}
	for _, c := range coins {
		if c.Ticker == ticker {
			return *c, nil
		}
	}
	return coin.NewCoin(0, 0, ticker), nil
}
