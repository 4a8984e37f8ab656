package rescue

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestMsgValidate(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg  weave.Msg
		errs map[string]*errors.Error
	}{
		"valid create factory": {
			msg: &CreateFactoryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Implementation: weavetest.SequenceID(1),
			},
			errs: map[string]*errors.Error{
				"Metadata":       nil,
				"Implementation": nil,
				"Governance":     nil,
			},
		},
		"create factory with invalid implementation": {
			msg: &CreateFactoryMsg{
				Implementation: []byte("1"),
				Governance:     weave.Address("short"),
			},
			errs: map[string]*errors.Error{
				"Metadata":       errors.ErrMetadata,
				"Implementation": errors.ErrInput,
				"Governance":     errors.ErrInput,
			},
		},
		"create instance with defaults": {
			msg: &CreateInstanceMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				FactoryID: weavetest.SequenceID(1),
			},
			errs: map[string]*errors.Error{
				"FactoryID": nil,
				"Hacker":    nil,
				"Committee": nil,
			},
		},
		"create instance requires a factory": {
			msg: &CreateInstanceMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Committee: addr,
			},
			errs: map[string]*errors.Error{
				"FactoryID": errors.ErrEmpty,
				"Committee": nil,
			},
		},
		"initialize": {
			msg: &InitializeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: weavetest.SequenceID(3),
				Hacker:     addr,
				Committee:  addr,
			},
			errs: map[string]*errors.Error{
				"InstanceID": nil,
				"Hacker":     nil,
				"Committee":  nil,
				"Governance": nil,
			},
		},
		"transfer ownership to the zero address passes stateless validation": {
			msg: &TransferOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: weavetest.SequenceID(1),
			},
			errs: map[string]*errors.Error{
				"InstanceID": nil,
				"NewOwner":   nil,
			},
		},
		"accept ownership requires an instance": {
			msg: &AcceptOwnershipMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			errs: map[string]*errors.Error{
				"InstanceID": errors.ErrEmpty,
			},
		},
		"renounce ownership": {
			msg: &RenounceOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: weavetest.SequenceID(1),
			},
			errs: map[string]*errors.Error{
				"Metadata":   nil,
				"InstanceID": nil,
			},
		},
		"committee can resign": {
			msg: &UpdateCommitteeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: weavetest.SequenceID(1),
			},
			errs: map[string]*errors.Error{
				"InstanceID": nil,
				"Committee":  nil,
			},
		},
		"retrieve native coins": {
			msg: &RetrieveFundsMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				InstanceID:  weavetest.SequenceID(1),
				Beneficiary: addr,
				BountyBps:   1000,
			},
			errs: map[string]*errors.Error{
				"InstanceID":  nil,
				"Beneficiary": nil,
				"Ticker":      nil,
			},
		},
		"retrieve with invalid ticker": {
			msg: &RetrieveFundsMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				InstanceID:  weavetest.SequenceID(1),
				Beneficiary: addr,
				BountyBps:   1000,
				Ticker:      "not a ticker",
			},
			errs: map[string]*errors.Error{
				"Ticker": errors.ErrCurrency,
			},
		},
		"update configuration requires a patch": {
			msg: &UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Patch":    errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestRetrieveFundsDestination(t *testing.T) {
	addr := weavetest.NewCondition().Address()
	var msg weave.Msg = &RetrieveFundsMsg{Beneficiary: addr}
	dm, ok := msg.(destinationMsg)
	if !ok {
		t.Fatal("retrieve funds message must declare a destination")
	}
	assertAddress(t, "destination", addr, dm.GetDestination())
}
