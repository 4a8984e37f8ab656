package rescue

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// payableCheck tells whether an address can receive funds. Factory and
// template accounts are not payable.
type payableCheck struct {
	instances orm.ModelBucket
	factories orm.ModelBucket
}

func newPayableCheck(instances, factories orm.ModelBucket) payableCheck {
	return payableCheck{instances: instances, factories: factories}
}

// check returns ErrSend if given address belongs to a factory or a template.
func (p payableCheck) check(db weave.ReadOnlyKVStore, addr weave.Address) error {
	var templates []*Instance
	if _, err := p.instances.ByIndex(db, "address", addr, &templates); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "instance by address")
	}
	for _, t := range templates {
		if t.IsTemplate() {
			return errors.Wrapf(ErrSend, "template %s cannot receive funds", addr)
		}
	}

	var factories []*Factory
	if _, err := p.factories.ByIndex(db, "address", addr, &factories); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "factory by address")
	}
	if len(factories) != 0 {
		return errors.Wrapf(ErrSend, "factory %s cannot receive funds", addr)
	}
	return nil
}

// CheckPayable returns ErrSend if funds cannot be sent to given address.
func CheckPayable(db weave.ReadOnlyKVStore, addr weave.Address) error {
	return newPayableCheck(NewInstanceBucket(), NewFactoryBucket()).check(db, addr)
}

// destinationMsg is implemented by messages that transfer funds to a single
// address, for example cash.SendMsg.
type destinationMsg interface {
	GetDestination() weave.Address
}

// PayableDecorator rejects any transaction that is sending funds to an account
// that cannot receive them.
type PayableDecorator struct {
	payable payableCheck
}

var _ weave.Decorator = PayableDecorator{}

// NewPayableDecorator returns a decorator protecting factory and template
// accounts from receiving funds.
func NewPayableDecorator() PayableDecorator {
	return PayableDecorator{
		payable: newPayableCheck(NewInstanceBucket(), NewFactoryBucket()),
	}
}

func (d PayableDecorator) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	if err := d.validate(db, tx); err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d PayableDecorator) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	if err := d.validate(db, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d PayableDecorator) validate(db weave.KVStore, tx weave.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	dm, ok := msg.(destinationMsg)
	if !ok {
		return nil
	}
	dest := dm.GetDestination()
	if len(dest) == 0 {
		return nil
	}
	return d.payable.check(db, dest)
}
