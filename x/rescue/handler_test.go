package rescue

import (
	"context"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions  []weave.Condition
		Tx          weave.Tx
		BlockHeight int64
		WantErr     *errors.Error
		// WantTags lists tags that the delivery must emit.
		WantTags    map[string]string
	}

	type AccountBalance struct {
		Wallet weave.Address
		Amount coin.Coin
	}

	var (
		adminCond      = weavetest.NewCondition()
		hackerCond     = weavetest.NewCondition()
		committeeCond  = weavetest.NewCondition()
		governanceCond = weavetest.NewCondition()
		bobCond        = weavetest.NewCondition()
		charlieCond    = weavetest.NewCondition()

		templateID = weavetest.SequenceID(1)
		factoryID  = weavetest.SequenceID(1)
		instanceID = weavetest.SequenceID(2)

		instanceAddr = InstanceCondition(instanceID).Address()
	)

	// deploy returns requests creating a template, a factory using it and a
	// single instance. Each call returns a new slice.
	deploy := func(governance weave.Address) []Request {
		return []Request{
			{
				Conditions: []weave.Condition{adminCond},
				Tx: &weavetest.Tx{
					Msg: &CreateTemplateMsg{Metadata: &weave.Metadata{Schema: 1}},
				},
				BlockHeight: 100,
			},
			{
				Conditions: []weave.Condition{adminCond},
				Tx: &weavetest.Tx{
					Msg: &CreateFactoryMsg{
						Metadata:       &weave.Metadata{Schema: 1},
						Implementation: templateID,
						Governance:     governance,
					},
				},
				BlockHeight: 101,
			},
			{
				Conditions: []weave.Condition{hackerCond},
				Tx: &weavetest.Tx{
					Msg: &CreateInstanceMsg{
						Metadata:  &weave.Metadata{Schema: 1},
						FactoryID: factoryID,
						Hacker:    hackerCond.Address(),
						Committee: committeeCond.Address(),
					},
				},
				BlockHeight: 102,
			},
		}
	}

	// committeeTakesOver returns a request accepting the owner role by the
	// committee.
	committeeTakesOver := Request{
		Conditions: []weave.Condition{committeeCond},
		Tx: &weavetest.Tx{
			Msg: &AcceptOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: instanceID,
			},
		},
		BlockHeight: 110,
	}

	withTags := func(req Request, tags map[string]string) Request {
		req.WantTags = tags
		return req
	}

	retrieve := func(signer weave.Condition, beneficiary weave.Address, bounty, ctip, gtip uint32, ticker string, wantErr *errors.Error) Request {
		return Request{
			Conditions: []weave.Condition{signer},
			Tx: &weavetest.Tx{
				Msg: &RetrieveFundsMsg{
					Metadata:         &weave.Metadata{Schema: 1},
					InstanceID:       instanceID,
					Beneficiary:      beneficiary,
					BountyBps:        bounty,
					CommitteeTipBps:  ctip,
					GovernanceTipBps: gtip,
					Ticker:           ticker,
				},
			},
			BlockHeight: 120,
			WantErr:     wantErr,
		}
	}

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"instance is created and initialized with given roles": {
			Requests: append(deploy(governanceCond.Address())[:2],
				withTags(deploy(governanceCond.Address())[2], map[string]string{
					"rescue":           "new_instance",
					"rescue.address":   instanceAddr.String(),
					"rescue.hacker":    hackerCond.Address().String(),
					"rescue.committee": committeeCond.Address().String(),
				}),
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				inst := loadInstance(t, db, instanceID)
				if !inst.Initialized {
					t.Fatal("instance is not initialized")
				}
				assertAddress(t, "hacker", hackerCond.Address(), inst.Hacker)
				assertAddress(t, "owner", hackerCond.Address(), inst.Owner)
				assertAddress(t, "pending owner", committeeCond.Address(), inst.PendingOwner)
				assertAddress(t, "committee", committeeCond.Address(), inst.Committee)
				assertAddress(t, "governance", governanceCond.Address(), inst.Governance)
				assertAddress(t, "address", instanceAddr, inst.Address)
				if string(inst.Implementation) != string(templateID) {
					t.Fatalf("unexpected implementation: %x", inst.Implementation)
				}
				if string(inst.Factory) != string(factoryID) {
					t.Fatalf("unexpected factory: %x", inst.Factory)
				}

				template := loadInstance(t, db, templateID)
				if !template.IsTemplate() || !template.Initialized {
					t.Fatal("template must be stored as initialized")
				}
			},
		},
		"hacker defaults to the creator of the instance": {
			Requests: []Request{
				deploy(nil)[0],
				deploy(nil)[1],
				{
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &CreateInstanceMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							FactoryID: factoryID,
							Committee: committeeCond.Address(),
						},
					},
					BlockHeight: 102,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				inst := loadInstance(t, db, instanceID)
				assertAddress(t, "hacker", bobCond.Address(), inst.Hacker)
				assertAddress(t, "owner", bobCond.Address(), inst.Owner)
				if len(inst.Governance) != 0 {
					t.Fatalf("unexpected governance: %s", inst.Governance)
				}
			},
		},
		"committee is required to create an instance": {
			Requests: []Request{
				deploy(nil)[0],
				deploy(nil)[1],
				{
					Conditions: []weave.Condition{hackerCond},
					Tx: &weavetest.Tx{
						Msg: &CreateInstanceMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							FactoryID: factoryID,
							Hacker:    hackerCond.Address(),
						},
					},
					BlockHeight: 102,
					WantErr:     errors.ErrEmpty,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var inst Instance
				if err := NewInstanceBucket().One(db, instanceID, &inst); !errors.ErrNotFound.Is(err) {
					t.Fatalf("instance must not exist: %+v", err)
				}
			},
		},
		"factory must reference an existing template": {
			Requests: append(deploy(nil),
				Request{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &CreateFactoryMsg{
							Metadata:       &weave.Metadata{Schema: 1},
							Implementation: instanceID,
						},
					},
					BlockHeight: 103,
					WantErr:     errors.ErrInput,
				},
				Request{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &CreateFactoryMsg{
							Metadata:       &weave.Metadata{Schema: 1},
							Implementation: weavetest.SequenceID(999),
						},
					},
					BlockHeight: 104,
					WantErr:     errors.ErrNotFound,
				},
			),
		},
		"instance can be created only from an existing factory": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{hackerCond},
					Tx: &weavetest.Tx{
						Msg: &CreateInstanceMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							FactoryID: factoryID,
							Committee: committeeCond.Address(),
						},
					},
					BlockHeight: 100,
					WantErr:     errors.ErrNotFound,
				},
			},
		},
		"neither an instance nor a template can be initialized again": {
			Requests: append(deploy(nil),
				Request{
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &InitializeMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
							Hacker:     charlieCond.Address(),
							Committee:  charlieCond.Address(),
						},
					},
					BlockHeight: 103,
					WantErr:     ErrInitialized,
				},
				Request{
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &InitializeMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: templateID,
							Hacker:     charlieCond.Address(),
							Committee:  charlieCond.Address(),
						},
					},
					BlockHeight: 104,
					WantErr:     ErrInitialized,
				},
				Request{
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &InitializeMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: weavetest.SequenceID(99),
							Hacker:     charlieCond.Address(),
							Committee:  charlieCond.Address(),
						},
					},
					BlockHeight: 105,
					WantErr:     errors.ErrNotFound,
				},
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				inst := loadInstance(t, db, instanceID)
				assertAddress(t, "hacker", hackerCond.Address(), inst.Hacker)
				template := loadInstance(t, db, templateID)
				if len(template.Hacker) != 0 || len(template.Owner) != 0 {
					t.Fatal("template must not hold any role")
				}
			},
		},
		"owner role is transferred using a handshake": {
			Requests: append(deploy(nil),
				withTags(committeeTakesOver, map[string]string{
					"rescue":                "ownership_transferred",
					"rescue.previous_owner": hackerCond.Address().String(),
					"rescue.new_owner":      committeeCond.Address().String(),
				}),
				Request{
					Conditions: []weave.Condition{hackerCond},
					Tx: &weavetest.Tx{
						Msg: &TransferOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
							NewOwner:   hackerCond.Address(),
						},
					},
					BlockHeight: 111,
					WantErr:     errors.ErrUnauthorized,
				},
				Request{
					Conditions: []weave.Condition{committeeCond},
					Tx: &weavetest.Tx{
						Msg: &TransferOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
						},
					},
					BlockHeight: 112,
					WantErr:     errors.ErrEmpty,
				},
				Request{
					Conditions: []weave.Condition{committeeCond},
					Tx: &weavetest.Tx{
						Msg: &TransferOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
							NewOwner:   charlieCond.Address(),
						},
					},
					BlockHeight: 113,
					WantTags: map[string]string{
						"rescue":           "new_owner_proposed",
						"rescue.new_owner": charlieCond.Address().String(),
					},
				},
				Request{
					Conditions: []weave.Condition{hackerCond},
					Tx: &weavetest.Tx{
						Msg: &AcceptOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
						},
					},
					BlockHeight: 114,
					WantErr:     errors.ErrUnauthorized,
				},
				Request{
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &AcceptOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
						},
					},
					BlockHeight: 115,
					WantTags: map[string]string{
						"rescue":                "ownership_transferred",
						"rescue.previous_owner": committeeCond.Address().String(),
						"rescue.new_owner":      charlieCond.Address().String(),
					},
				},
				// Handshake is complete and cannot be repeated.
				Request{
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &AcceptOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
						},
					},
					BlockHeight: 116,
					WantErr:     errors.ErrUnauthorized,
				},
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				inst := loadInstance(t, db, instanceID)
				assertAddress(t, "owner", charlieCond.Address(), inst.Owner)
				if len(inst.PendingOwner) != 0 {
					t.Fatalf("unexpected pending owner: %s", inst.PendingOwner)
				}
				assertAddress(t, "hacker", hackerCond.Address(), inst.Hacker)
				assertAddress(t, "committee", committeeCond.Address(), inst.Committee)
			},
		},
		"renouncing the owner role hands it back to the hacker": {
			Requests: append(deploy(nil),
				committeeTakesOver,
				Request{
					Conditions: []weave.Condition{committeeCond},
					Tx: &weavetest.Tx{
						Msg: &TransferOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
							NewOwner:   charlieCond.Address(),
						},
					},
					BlockHeight: 111,
				},
				Request{
					Conditions: []weave.Condition{hackerCond},
					Tx: &weavetest.Tx{
						Msg: &RenounceOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
						},
					},
					BlockHeight: 112,
					WantErr:     errors.ErrUnauthorized,
				},
				Request{
					Conditions: []weave.Condition{committeeCond},
					Tx: &weavetest.Tx{
						Msg: &RenounceOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
						},
					},
					BlockHeight: 113,
					WantTags: map[string]string{
						"rescue":                "ownership_transferred",
						"rescue.previous_owner": committeeCond.Address().String(),
						"rescue.new_owner":      hackerCond.Address().String(),
					},
				},
				// Renounce dropped the pending proposal.
				Request{
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &AcceptOwnershipMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
						},
					},
					BlockHeight: 114,
					WantErr:     errors.ErrUnauthorized,
				},
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				inst := loadInstance(t, db, instanceID)
				assertAddress(t, "owner", hackerCond.Address(), inst.Owner)
				if len(inst.PendingOwner) != 0 {
					t.Fatalf("unexpected pending owner: %s", inst.PendingOwner)
				}
			},
		},
		"committee is reassigned only by the committee": {
			Requests: append(deploy(nil),
				Request{
					Conditions: []weave.Condition{hackerCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateCommitteeMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
							Committee:  hackerCond.Address(),
						},
					},
					BlockHeight: 111,
					WantErr:     errors.ErrUnauthorized,
				},
				Request{
					Conditions: []weave.Condition{committeeCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateCommitteeMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
							Committee:  charlieCond.Address(),
						},
					},
					BlockHeight: 112,
					WantTags: map[string]string{
						"rescue":           "committee_changed",
						"rescue.committee": charlieCond.Address().String(),
					},
				},
				Request{
					Conditions: []weave.Condition{committeeCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateCommitteeMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
							Committee:  committeeCond.Address(),
						},
					},
					BlockHeight: 113,
					WantErr:     errors.ErrUnauthorized,
				},
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				inst := loadInstance(t, db, instanceID)
				assertAddress(t, "committee", charlieCond.Address(), inst.Committee)
				// Changing the committee does not affect the owner handshake.
				assertAddress(t, "pending owner", committeeCond.Address(), inst.PendingOwner)
			},
		},
		"only the owner can retrieve funds": {
			Funds: []AccountBalance{
				{Wallet: instanceAddr, Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: append(deploy(governanceCond.Address()),
				retrieve(committeeCond, bobCond.Address(), 1000, 0, 0, "", errors.ErrUnauthorized),
				committeeTakesOver,
				retrieve(hackerCond, bobCond.Address(), 1000, 0, 0, "", errors.ErrUnauthorized),
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, instanceAddr, coin.NewCoin(10, 0, "IOV"))
			},
		},
		"funds are split between the hacker, tips and the beneficiary": {
			Funds: []AccountBalance{
				{Wallet: instanceAddr, Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: append(deploy(governanceCond.Address()),
				committeeTakesOver,
				retrieve(committeeCond, bobCond.Address(), 10, 0, 0, "", errors.ErrInput),
				retrieve(committeeCond, bobCond.Address(), 10001, 0, 0, "", errors.ErrOverflow),
				retrieve(committeeCond, bobCond.Address(), 9000, 900, 101, "", errors.ErrOverflow),
				retrieve(committeeCond, nil, 1000, 200, 100, "", errors.ErrEmpty),
				withTags(retrieve(committeeCond, bobCond.Address(), 1000, 200, 100, "", nil), map[string]string{
					"rescue":                    "funds_retrieved",
					"rescue.beneficiary":        bobCond.Address().String(),
					"rescue.ticker":             "IOV",
					"rescue.bounty_bps":         "1000",
					"rescue.committee_tip_bps":  "200",
					"rescue.governance_tip_bps": "100",
				}),
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, hackerCond.Address(), coin.NewCoin(1, 0, "IOV"))
				assertFunds(t, db, committeeCond.Address(), coin.NewCoin(0, 200000000, "IOV"))
				assertFunds(t, db, governanceCond.Address(), coin.NewCoin(0, 100000000, "IOV"))
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(8, 700000000, "IOV"))
				assertNoFunds(t, db, instanceAddr)
			},
		},
		"shares are checked before the balance": {
			Requests: append(deploy(nil),
				committeeTakesOver,
				retrieve(committeeCond, bobCond.Address(), 11000, 0, 0, "", errors.ErrOverflow),
				retrieve(committeeCond, bobCond.Address(), 1000, 0, 0, "", errors.ErrEmpty),
				retrieve(committeeCond, bobCond.Address(), 1000, 0, 0, "ETH", errors.ErrEmpty),
			),
		},
		"whole balance can be paid as a bounty": {
			Funds: []AccountBalance{
				{Wallet: instanceAddr, Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: append(deploy(nil),
				committeeTakesOver,
				retrieve(committeeCond, bobCond.Address(), 10000, 0, 0, "", nil),
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, hackerCond.Address(), coin.NewCoin(10, 0, "IOV"))
				assertNoFunds(t, db, bobCond.Address())
				assertNoFunds(t, db, instanceAddr)
			},
		},
		"tokens are released one ticker at a time": {
			Funds: []AccountBalance{
				{Wallet: instanceAddr, Amount: coin.NewCoin(5, 0, "ETH")},
				{Wallet: instanceAddr, Amount: coin.NewCoin(3, 0, "IOV")},
			},
			Requests: append(deploy(nil),
				committeeTakesOver,
				retrieve(committeeCond, bobCond.Address(), 2000, 0, 0, "ETH", nil),
				retrieve(committeeCond, bobCond.Address(), 2000, 0, 0, "ETH", errors.ErrEmpty),
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, hackerCond.Address(), coin.NewCoin(1, 0, "ETH"))
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(4, 0, "ETH"))
				assertFunds(t, db, instanceAddr, coin.NewCoin(3, 0, "IOV"))
			},
		},
		"resigned committee is not tipped": {
			Funds: []AccountBalance{
				{Wallet: instanceAddr, Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: append(deploy(nil),
				committeeTakesOver,
				Request{
					Conditions: []weave.Condition{committeeCond},
					Tx: &weavetest.Tx{
						Msg: &UpdateCommitteeMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							InstanceID: instanceID,
						},
					},
					BlockHeight: 111,
				},
				// Reported tip is the one paid, not the one requested.
				withTags(retrieve(committeeCond, bobCond.Address(), 1000, 500, 0, "", nil), map[string]string{
					"rescue":                    "funds_retrieved",
					"rescue.bounty_bps":         "1000",
					"rescue.committee_tip_bps":  "0",
					"rescue.governance_tip_bps": "0",
				}),
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, hackerCond.Address(), coin.NewCoin(1, 0, "IOV"))
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(9, 0, "IOV"))
				assertNoFunds(t, db, committeeCond.Address())
			},
		},
		"governance tip requires a governance address": {
			Funds: []AccountBalance{
				{Wallet: instanceAddr, Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: append(deploy(nil),
				committeeTakesOver,
				retrieve(committeeCond, bobCond.Address(), 1000, 0, 100, "", errors.ErrEmpty),
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, instanceAddr, coin.NewCoin(10, 0, "IOV"))
			},
		},
		"funds cannot be released to a factory or a template": {
			Funds: []AccountBalance{
				{Wallet: instanceAddr, Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: append(deploy(nil),
				committeeTakesOver,
				retrieve(committeeCond, FactoryCondition(factoryID).Address(), 1000, 0, 0, "", ErrSend),
				retrieve(committeeCond, InstanceCondition(templateID).Address(), 1000, 0, 0, "", ErrSend),
			),
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, instanceAddr, coin.NewCoin(10, 0, "IOV"))
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "rescue", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			RegisterRoutes(rt, auth, ctrl)

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}

			config := Configuration{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        adminCond.Address(),
				NativeTicker: "IOV",
			}
			if err := gconf.Save(db, "rescue", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.BlockHeight)
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				res, err := rt.Deliver(ctx, db, req.Tx)
				if !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
				if err == nil {
					assertTags(t, i, req.WantTags, res.Tags)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func loadInstance(t testing.TB, db weave.KVStore, id []byte) *Instance {
	t.Helper()

	var inst Instance
	if err := NewInstanceBucket().One(db, id, &inst); err != nil {
		t.Fatalf("cannot load instance %x: %s", id, err)
	}
	return &inst
}

// assertTags fails if any of the wanted tags is missing or has a different
// value. Tags that are not listed are ignored.
func assertTags(t testing.TB, request int, want map[string]string, got []common.KVPair) {
	t.Helper()

	values := make(map[string]string, len(got))
	for _, kv := range got {
		values[string(kv.Key)] = string(kv.Value)
	}
	for key, value := range want {
		v, ok := values[key]
		if !ok {
			t.Fatalf("request %d: tag %q not found in %q", request, key, got)
		}
		if v != value {
			t.Fatalf("request %d: unexpected %q tag: want %q, got %q", request, key, value, v)
		}
	}
}

func assertAddress(t testing.TB, name string, want, got weave.Address) {
	t.Helper()
	if !want.Equals(got) {
		t.Fatalf("unexpected %s: want %s, got %s", name, want, got)
	}
}

func assertFunds(t testing.TB, db weave.KVStore, wallet weave.Address, funds coin.Coin) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	for _, c := range coins {
		if c.Ticker != funds.Ticker {
			continue
		}
		if !c.Equals(funds) {
			t.Fatalf("unexpected funds found: %q", c)
		}
		return
	}
	t.Fatalf("want %q funds, found %d coins: %q", funds, len(coins), coins)
}

func assertNoFunds(t testing.TB, db weave.KVStore, wallet weave.Address) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	switch {
	case errors.ErrNotFound.Is(err), errors.ErrEmpty.Is(err):
		return
	case err != nil:
		t.Fatalf("balance: %s", err)
	}
	for _, c := range coins {
		if !c.IsZero() {
			t.Fatalf("unexpected funds found: %q", coins)
		}
	}
}
