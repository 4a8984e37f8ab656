package main

import (
	"testing"

	"github.com/iov-one/rescue/cmd/rescued/app"
	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestExtractResponse(t *testing.T) {
	createTx := &app.Tx{
		Sum: &app.Tx_RescueCreateInstanceMsg{
			RescueCreateInstanceMsg: &rescue.CreateInstanceMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
		},
	}
	acceptTx := &app.Tx{
		Sum: &app.Tx_RescueAcceptOwnershipMsg{
			RescueAcceptOwnershipMsg: &rescue.AcceptOwnershipMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
		},
	}

	cases := map[string]struct {
		tx      weave.Tx
		data    []byte
		want    string
		wantErr bool
	}{
		"created instance sequence is printed": {
			tx:   createTx,
			data: sequenceID(42),
			want: "42",
		},
		"invalid sequence": {
			tx:      createTx,
			data:    []byte("xyz"),
			wantErr: true,
		},
		"no formatter registered": {
			tx:   acceptTx,
			data: []byte("anything"),
			want: "",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := extractResponse(tc.tx, tc.data, formatters)
			if hasErr := err != nil; hasErr != tc.wantErr {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQueryTarget(t *testing.T) {
	addr := weave.Address(fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"))

	path, key, obj, err := queryTarget(sequenceID(2), nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, "/rescueinstances", path)
	assert.Equal(t, sequenceID(2), key)
	if _, ok := obj.(*rescue.Instance); !ok {
		t.Fatalf("unexpected entity type %T", obj)
	}

	path, _, obj, err = queryTarget(nil, sequenceID(1), nil)
	assert.Nil(t, err)
	assert.Equal(t, "/rescuefactories", path)
	if _, ok := obj.(*rescue.Factory); !ok {
		t.Fatalf("unexpected entity type %T", obj)
	}

	path, key, _, err = queryTarget(nil, nil, addr)
	assert.Nil(t, err)
	assert.Equal(t, "/wallets", path)
	assert.Equal(t, []byte(addr), key)

	if _, _, _, err := queryTarget(nil, nil, nil); err == nil {
		t.Fatal("a query target is required")
	}
	if _, _, _, err := queryTarget(sequenceID(1), sequenceID(1), nil); err == nil {
		t.Fatal("only one query target is allowed")
	}
}
