package rescue

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Instance{}, migration.NoModification)
	migration.MustRegister(1, &Factory{}, migration.NoModification)
}

var _ orm.Model = (*Instance)(nil)

// Validate ensures the instance is valid. A template is an instance without
// an implementation reference and it must not declare any role.
func (i *Instance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", i.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", i.Address.Validate())
	if !i.Initialized {
		errs = errors.AppendField(errs, "Initialized",
			errors.Wrap(errors.ErrState, "instance must be initialized"))
	}

	if i.IsTemplate() {
		if len(i.Factory) != 0 {
			errs = errors.AppendField(errs, "Factory",
				errors.Wrap(errors.ErrInput, "template cannot reference a factory"))
		}
		for name, a := range map[string]weave.Address{
			"Hacker":       i.Hacker,
			"Owner":        i.Owner,
			"PendingOwner": i.PendingOwner,
			"Committee":    i.Committee,
			"Governance":   i.Governance,
		} {
			if len(a) != 0 {
				errs = errors.AppendField(errs, name,
					errors.Wrap(errors.ErrInput, "template cannot hold a role"))
			}
		}
		return errs
	}

	if err := orm.ValidateSequence(i.Factory); err != nil {
		errs = errors.AppendField(errs, "Factory", err)
	}
	errs = errors.AppendField(errs, "Hacker", i.Hacker.Validate())
	errs = errors.AppendField(errs, "Owner", i.Owner.Validate())
	errs = errors.AppendField(errs, "PendingOwner", validateOptionalAddress(i.PendingOwner))
	errs = errors.AppendField(errs, "Committee", validateOptionalAddress(i.Committee))
	errs = errors.AppendField(errs, "Governance", validateOptionalAddress(i.Governance))
	return errs
}

// IsTemplate returns true if this instance is a template that other instances
// are cloned from.
func (i *Instance) IsTemplate() bool {
	return len(i.Implementation) == 0
}

// InstanceCondition returns the condition that owns the funds of the instance
// with given ID.
func InstanceCondition(id []byte) weave.Condition {
	return weave.NewCondition("rescue", "instance", id)
}

// NewInstanceBucket returns a bucket for managing instances and templates.
func NewInstanceBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rescueinst", &Instance{},
		orm.WithIDSequence(instanceSeq),
		orm.WithIndex("hacker", idxHacker, false),
		orm.WithIndex("owner", idxOwner, false),
		orm.WithIndex("factory", idxFactory, false),
		orm.WithIndex("address", idxInstanceAddress, true),
	)
	return migration.NewModelBucket("rescue", b)
}

var instanceSeq = orm.NewSequence("rescueinst", "id")

func toInstance(obj orm.Object) (*Instance, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	inst, ok := obj.Value().(*Instance)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not an instance")
	}
	return inst, nil
}

func idxHacker(obj orm.Object) ([]byte, error) {
	inst, err := toInstance(obj)
	if err != nil {
		return nil, err
	}
	return inst.Hacker, nil
}

func idxOwner(obj orm.Object) ([]byte, error) {
	inst, err := toInstance(obj)
	if err != nil {
		return nil, err
	}
	return inst.Owner, nil
}

func idxFactory(obj orm.Object) ([]byte, error) {
	inst, err := toInstance(obj)
	if err != nil {
		return nil, err
	}
	return inst.Factory, nil
}

func idxInstanceAddress(obj orm.Object) ([]byte, error) {
	inst, err := toInstance(obj)
	if err != nil {
		return nil, err
	}
	return inst.Address, nil
}

var _ orm.Model = (*Factory)(nil)

func (f *Factory) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", f.Metadata.Validate())
	errs = errors.AppendField(errs, "Implementation", orm.ValidateSequence(f.Implementation))
	errs = errors.AppendField(errs, "Governance", validateOptionalAddress(f.Governance))
	errs = errors.AppendField(errs, "Address", f.Address.Validate())
	return errs
}

// FactoryCondition returns the condition of the factory with given ID. A
// factory account never holds funds.
func FactoryCondition(id []byte) weave.Condition {
	return weave.NewCondition("rescue", "factory", id)
}

// NewFactoryBucket returns a bucket for managing factories.
func NewFactoryBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rescuefac", &Factory{},
		orm.WithIDSequence(factorySeq),
		orm.WithIndex("implementation", idxImplementation, false),
		orm.WithIndex("address", idxFactoryAddress, true),
	)
	return migration.NewModelBucket("rescue", b)
}

var factorySeq = orm.NewSequence("rescuefac", "id")

func idxImplementation(obj orm.Object) ([]byte, error) {
	f, ok := obj.Value().(*Factory)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a factory")
	}
	return f.Implementation, nil
}

func idxFactoryAddress(obj orm.Object) ([]byte, error) {
	f, ok := obj.Value().(*Factory)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a factory")
	}
	return f.Address, nil
}

// validateOptionalAddress returns an error only if given address is not empty
// and not a valid address.
func validateOptionalAddress(a weave.Address) error {
	if len(a) == 0 {
		return nil
	}
	return a.Validate()
}
