package rescue

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial templates and factories from genesis and
// save them to the database. Templates are created first so that factories
// can reference them by their sequence number, starting with 1.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "rescue", &conf); {
	case errors.ErrNotFound.Is(err):
		// Configuration is optional.
	case err != nil:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var genesis struct {
		Templates int `json:"templates"`
		Factories []struct {
			Implementation uint64        `json:"implementation"`
			Governance     weave.Address `json:"governance"`
		} `json:"factories"`
	}
	if err := opts.ReadOptions("rescue", &genesis); err != nil {
		return err
	}

	instances := NewInstanceBucket()
	for i := 0; i < genesis.Templates; i++ {
		key, err := instanceSeq.NextVal(db)
		if err != nil {
			return errors.Wrap(err, "cannot acquire key")
		}
		template := Instance{
			Metadata:    &weave.Metadata{Schema: 1},
			Initialized: true,
			Address:     InstanceCondition(key).Address(),
		}
		if _, err := instances.Put(db, key, &template); err != nil {
			return errors.Wrapf(err, "store template %d", i)
		}
	}

	factories := NewFactoryBucket()
	for i, f := range genesis.Factories {
		implementation := sequenceID(f.Implementation)
		var template Instance
		if err := instances.One(db, implementation, &template); err != nil {
			return errors.Wrapf(err, "factory %d implementation", i)
		}
		if !template.IsTemplate() {
			return errors.Wrapf(errors.ErrInput, "factory %d implementation is not a template", i)
		}
		key, err := factorySeq.NextVal(db)
		if err != nil {
			return errors.Wrap(err, "cannot acquire key")
		}
		factory := Factory{
			Metadata:       &weave.Metadata{Schema: 1},
			Implementation: implementation,
			Governance:     f.Governance,
			Address:        FactoryCondition(key).Address(),
		}
		if err := factory.Validate(); err != nil {
			return errors.Wrapf(err, "factory %d is invalid", i)
		}
		if _, err := factories.Put(db, key, &factory); err != nil {
			return errors.Wrapf(err, "store factory %d", i)
		}
	}
	return nil
}

// sequenceID returns the database key of the n-th element created using an
// orm sequence.
func sequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
