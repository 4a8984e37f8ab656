package main

import (
	"bytes"
	"testing"

	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestCmdCreateInstanceHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-factory", "3",
		"-hacker", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-committee", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
	}
	if err := cmdCreateInstance(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new instance transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*rescue.CreateInstanceMsg)

	assert.Equal(t, sequenceID(3), msg.FactoryID)
	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(msg.Hacker))
	assert.Equal(t, fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"), []byte(msg.Committee))
	assert.Nil(t, msg.Validate())
}

func TestCmdCreateFactoryHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-implementation", "1",
		"-governance", "b1ca7e78f74423ae01da3b51e676934d9105f282",
	}
	if err := cmdCreateFactory(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new factory transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*rescue.CreateFactoryMsg)

	assert.Equal(t, sequenceID(1), msg.Implementation)
	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(msg.Governance))
	assert.Nil(t, msg.Validate())
}

func TestCmdRetrieveFundsHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-instance", "2",
		"-beneficiary", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-bounty", "1500",
		"-committee-tip", "200",
		"-governance-tip", "100",
		"-ticker", "ETH",
	}
	if err := cmdRetrieveFunds(nil, &output, args); err != nil {
		t.Fatalf("cannot create a retrieve funds transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*rescue.RetrieveFundsMsg)

	assert.Equal(t, sequenceID(2), msg.InstanceID)
	assert.Equal(t, fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"), []byte(msg.Beneficiary))
	assert.Equal(t, uint32(1500), msg.BountyBps)
	assert.Equal(t, uint32(200), msg.CommitteeTipBps)
	assert.Equal(t, uint32(100), msg.GovernanceTipBps)
	assert.Equal(t, "ETH", msg.Ticker)
	assert.Equal(t, weave.Address(msg.Beneficiary), msg.GetDestination())
}

func TestCmdOwnershipTransactions(t *testing.T) {
	const newOwner = "b1ca7e78f74423ae01da3b51e676934d9105f282"

	cases := map[string]struct {
		cmd     func(*bytes.Buffer) error
		wantMsg weave.Msg
	}{
		"transfer": {
			cmd: func(out *bytes.Buffer) error {
				return cmdTransferOwnership(nil, out, []string{"-instance", "7", "-owner", newOwner})
			},
			wantMsg: &rescue.TransferOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: sequenceID(7),
				NewOwner:   fromHex(t, newOwner),
			},
		},
		"accept": {
			cmd: func(out *bytes.Buffer) error {
				return cmdAcceptOwnership(nil, out, []string{"-instance", "7"})
			},
			wantMsg: &rescue.AcceptOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: sequenceID(7),
			},
		},
		"renounce": {
			cmd: func(out *bytes.Buffer) error {
				return cmdRenounceOwnership(nil, out, []string{"-instance", "7"})
			},
			wantMsg: &rescue.RenounceOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: sequenceID(7),
			},
		},
		"update committee": {
			cmd: func(out *bytes.Buffer) error {
				return cmdUpdateCommittee(nil, out, []string{"-instance", "7", "-committee", newOwner})
			},
			wantMsg: &rescue.UpdateCommitteeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: sequenceID(7),
				Committee:  fromHex(t, newOwner),
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var output bytes.Buffer
			if err := tc.cmd(&output); err != nil {
				t.Fatalf("cannot create transaction: %s", err)
			}
			tx, _, err := readTx(&output)
			if err != nil {
				t.Fatalf("cannot unmarshal created transaction: %s", err)
			}
			msg, err := tx.GetMsg()
			if err != nil {
				t.Fatalf("cannot get transaction message: %s", err)
			}
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestCmdCreateTemplate(t *testing.T) {
	var output bytes.Buffer
	if err := cmdCreateTemplate(nil, &output, nil); err != nil {
		t.Fatalf("cannot create a template transaction: %s", err)
	}
	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	msg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	if _, ok := msg.(*rescue.CreateTemplateMsg); !ok {
		t.Fatalf("unexpected message: %T", msg)
	}
	assert.Nil(t, msg.Validate())
}
