package main

import (
	"bytes"
	"testing"

	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
)

func TestCmdSendTokensHappyPath(t *testing.T) {
	dst := rescue.InstanceCondition(sequenceID(2)).Address()

	var output bytes.Buffer
	args := []string{
		"-src", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-dst", dst.String(),
		"-amount", "5 IOV",
		"-memo", "recovered",
	}
	if err := cmdSendTokens(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new token transfer transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*cash.SendMsg)

	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(msg.Source))
	assert.Equal(t, []byte(dst), []byte(msg.Destination))
	assert.Equal(t, "recovered", msg.Memo)
	assert.Equal(t, coin.NewCoinp(5, 0, "IOV"), msg.Amount)
}

func TestCmdWithFeeHappyPath(t *testing.T) {
	var input bytes.Buffer
	if err := cmdAcceptOwnership(nil, &input, []string{"-instance", "2"}); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}

	var output bytes.Buffer
	args := []string{
		"-payer", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-amount", "0.1 IOV",
	}
	if err := cmdWithFee(&input, &output, args); err != nil {
		t.Fatalf("cannot attach a fee to transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(tx.Fees.Payer))
	assert.Equal(t, coin.NewCoinp(0, 100000000, "IOV"), tx.Fees.Fees)
}

func TestCmdWithFeeDefaultPayer(t *testing.T) {
	var input bytes.Buffer
	if err := cmdAcceptOwnership(nil, &input, []string{"-instance", "2"}); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}
	var output bytes.Buffer
	if err := cmdWithFee(&input, &output, nil); err != nil {
		t.Fatalf("cannot attach a fee to transaction: %s", err)
	}
	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	// Without a payer the fee is charged to the main signer.
	assert.Equal(t, 0, len(tx.Fees.Payer))
	assert.Equal(t, coin.NewCoinp(1, 0, "IOV"), tx.Fees.Fees)
}
