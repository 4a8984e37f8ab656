package app

import (
	"encoding/binary"

	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	wallet := &cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins: []*coin.Coin{
			{Whole: 50000, Ticker: "IOV"},
			{Whole: 150, Fractional: 567000, Ticker: "ETH"},
		},
	}

	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	user := &sigs.UserData{
		Metadata: &weave.Metadata{Schema: 1},
		Pubkey:   pub,
		Sequence: 17,
	}

	seq := func(n uint64) []byte {
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, n)
		return b
	}

	hacker := pub.Address()
	committee := crypto.GenPrivKeyEd25519().PublicKey().Address()
	beneficiary := crypto.GenPrivKeyEd25519().PublicKey().Address()
	instanceID := seq(2)
	factoryID := seq(1)

	instance := &rescue.Instance{
		Metadata:       &weave.Metadata{Schema: 1},
		Implementation: seq(1),
		Factory:        factoryID,
		Hacker:         hacker,
		Owner:          hacker,
		PendingOwner:   committee,
		Committee:      committee,
		Initialized:    true,
		Address:        rescue.InstanceCondition(instanceID).Address(),
	}

	createMsg := &rescue.CreateInstanceMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		FactoryID: factoryID,
		Hacker:    hacker,
		Committee: committee,
	}
	retrieveMsg := &rescue.RetrieveFundsMsg{
		Metadata:        &weave.Metadata{Schema: 1},
		InstanceID:      instanceID,
		Beneficiary:     beneficiary,
		BountyBps:       1000,
		CommitteeTipBps: 200,
	}

	unsigned := Tx{
		Sum: &Tx_RescueCreateInstanceMsg{RescueCreateInstanceMsg: createMsg},
	}
	tx := unsigned
	sig, err := sigs.SignTx(priv, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "instance", Obj: instance},
		{Filename: "create_instance_msg", Obj: createMsg},
		{Filename: "retrieve_funds_msg", Obj: retrieveMsg},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
