package rescue

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestInstanceValidate(t *testing.T) {
	cases := map[string]struct {
		inst Instance
		errs map[string]*errors.Error
	}{
		"valid instance": {
			inst: Instance{
				Metadata:       &weave.Metadata{Schema: 1},
				Implementation: weavetest.SequenceID(1),
				Factory:        weavetest.SequenceID(1),
				Hacker:         weavetest.NewCondition().Address(),
				Owner:          weavetest.NewCondition().Address(),
				PendingOwner:   weavetest.NewCondition().Address(),
				Committee:      weavetest.NewCondition().Address(),
				Initialized:    true,
				Address:        InstanceCondition(weavetest.SequenceID(2)).Address(),
			},
			errs: map[string]*errors.Error{
				"Metadata":     nil,
				"Factory":      nil,
				"Hacker":       nil,
				"Owner":        nil,
				"PendingOwner": nil,
				"Committee":    nil,
				"Governance":   nil,
				"Initialized":  nil,
				"Address":      nil,
			},
		},
		"valid template": {
			inst: Instance{
				Metadata:    &weave.Metadata{Schema: 1},
				Initialized: true,
				Address:     InstanceCondition(weavetest.SequenceID(1)).Address(),
			},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Factory":  nil,
				"Hacker":   nil,
				"Owner":    nil,
				"Address":  nil,
			},
		},
		"template cannot hold roles": {
			inst: Instance{
				Metadata:    &weave.Metadata{Schema: 1},
				Factory:     weavetest.SequenceID(1),
				Hacker:      weavetest.NewCondition().Address(),
				Committee:   weavetest.NewCondition().Address(),
				Initialized: true,
				Address:     InstanceCondition(weavetest.SequenceID(1)).Address(),
			},
			errs: map[string]*errors.Error{
				"Factory":   errors.ErrInput,
				"Hacker":    errors.ErrInput,
				"Committee": errors.ErrInput,
				"Owner":     nil,
			},
		},
		"missing fields": {
			inst: Instance{
				Implementation: weavetest.SequenceID(1),
			},
			errs: map[string]*errors.Error{
				"Metadata":    errors.ErrMetadata,
				"Factory":     errors.ErrEmpty,
				"Hacker":      errors.ErrEmpty,
				"Owner":       errors.ErrEmpty,
				"Committee":   nil,
				"Initialized": errors.ErrState,
				"Address":     errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.inst.Validate()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestFactoryValidate(t *testing.T) {
	cases := map[string]struct {
		factory Factory
		errs    map[string]*errors.Error
	}{
		"valid factory": {
			factory: Factory{
				Metadata:       &weave.Metadata{Schema: 1},
				Implementation: weavetest.SequenceID(1),
				Governance:     weavetest.NewCondition().Address(),
				Address:        FactoryCondition(weavetest.SequenceID(1)).Address(),
			},
			errs: map[string]*errors.Error{
				"Metadata":       nil,
				"Implementation": nil,
				"Governance":     nil,
				"Address":        nil,
			},
		},
		"governance is optional": {
			factory: Factory{
				Metadata:       &weave.Metadata{Schema: 1},
				Implementation: weavetest.SequenceID(1),
				Address:        FactoryCondition(weavetest.SequenceID(1)).Address(),
			},
			errs: map[string]*errors.Error{
				"Governance": nil,
			},
		},
		"missing fields": {
			factory: Factory{},
			errs: map[string]*errors.Error{
				"Metadata":       errors.ErrMetadata,
				"Implementation": errors.ErrEmpty,
				"Governance":     nil,
				"Address":        errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.factory.Validate()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestConditionsDoNotCollide(t *testing.T) {
	id := weavetest.SequenceID(1)
	if InstanceCondition(id).Address().Equals(FactoryCondition(id).Address()) {
		t.Fatal("instance and factory with the same ID must have different addresses")
	}
	if InstanceCondition(id).Address().Equals(InstanceCondition(weavetest.SequenceID(2)).Address()) {
		t.Fatal("instances must have different addresses")
	}
}
