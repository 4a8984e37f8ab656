package rescue

import (
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

func TestCheckShares(t *testing.T) {
	cases := map[string]struct {
		bounty, committee, governance uint32
		wantErr                       *errors.Error
	}{
		"minimal bounty": {
			bounty: 1000,
		},
		"whole balance as bounty": {
			bounty: 10000,
		},
		"all shares used": {
			bounty:     5000,
			committee:  2500,
			governance: 2500,
		},
		"bounty below 10%": {
			bounty:  999,
			wantErr: errors.ErrInput,
		},
		"bounty check comes first": {
			bounty:     1,
			committee:  20000,
			governance: 20000,
			wantErr:    errors.ErrInput,
		},
		"bounty above 100%": {
			bounty:  10001,
			wantErr: errors.ErrOverflow,
		},
		"shares sum above 100%": {
			bounty:     8000,
			committee:  1500,
			governance: 501,
			wantErr:    errors.ErrOverflow,
		},
		"sum does not wrap around": {
			bounty:     4294967295,
			committee:  4294967295,
			governance: 4294967295,
			wantErr:    errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := checkShares(tc.bounty, tc.committee, tc.governance)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestSplitBalance(t *testing.T) {
	cases := map[string]struct {
		total                         coin.Coin
		bounty, committee, governance uint32
		want                          *payout
		wantErr                       *errors.Error
	}{
		"bounty and tips": {
			total:      coin.NewCoin(10, 0, "IOV"),
			bounty:     1000,
			committee:  200,
			governance: 100,
			want: &payout{
				Hacker:     coin.NewCoin(1, 0, "IOV"),
				Committee:  coin.NewCoin(0, 200000000, "IOV"),
				Governance: coin.NewCoin(0, 100000000, "IOV"),
				Remainder:  coin.NewCoin(8, 700000000, "IOV"),
			},
		},
		"whole balance as bounty": {
			total:  coin.NewCoin(7, 123, "ETH"),
			bounty: 10000,
			want: &payout{
				Hacker:     coin.NewCoin(7, 123, "ETH"),
				Committee:  coin.NewCoin(0, 0, "ETH"),
				Governance: coin.NewCoin(0, 0, "ETH"),
				Remainder:  coin.NewCoin(0, 0, "ETH"),
			},
		},
		"rounding dust goes to the remainder": {
			total:      coin.NewCoin(0, 9, "IOV"),
			bounty:     1000,
			committee:  1000,
			governance: 1000,
			want: &payout{
				Hacker:     coin.NewCoin(0, 0, "IOV"),
				Committee:  coin.NewCoin(0, 0, "IOV"),
				Governance: coin.NewCoin(0, 0, "IOV"),
				Remainder:  coin.NewCoin(0, 9, "IOV"),
			},
		},
		"fractional balance": {
			total:  coin.NewCoin(1, 500000000, "IOV"),
			bounty: 3333,
			want: &payout{
				Hacker:     coin.NewCoin(0, 499950000, "IOV"),
				Committee:  coin.NewCoin(0, 0, "IOV"),
				Governance: coin.NewCoin(0, 0, "IOV"),
				Remainder:  coin.NewCoin(1, 50000, "IOV"),
			},
		},
		"largest balance does not overflow": {
			total:      coin.NewCoin(coin.MaxInt, coin.FracUnit-1, "IOV"),
			bounty:     5000,
			committee:  5000,
			governance: 0,
			want: &payout{
				Hacker:     coin.NewCoin(coin.MaxInt/2, 999999999, "IOV"),
				Committee:  coin.NewCoin(coin.MaxInt/2, 999999999, "IOV"),
				Governance: coin.NewCoin(0, 0, "IOV"),
				Remainder:  coin.NewCoin(0, 1, "IOV"),
			},
		},
		"empty balance": {
			total:   coin.NewCoin(0, 0, "IOV"),
			bounty:  1000,
			wantErr: errors.ErrAmount,
		},
		"bounty below minimum": {
			total:   coin.NewCoin(10, 0, "IOV"),
			bounty:  999,
			wantErr: errors.ErrInput,
		},
		"shares above the whole balance": {
			total:      coin.NewCoin(10, 0, "IOV"),
			bounty:     9000,
			committee:  900,
			governance: 101,
			wantErr:    errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := splitBalance(tc.total, tc.bounty, tc.committee, tc.governance)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.want == nil {
				return
			}
			assertCoin(t, "hacker", tc.want.Hacker, got.Hacker)
			assertCoin(t, "committee", tc.want.Committee, got.Committee)
			assertCoin(t, "governance", tc.want.Governance, got.Governance)
			assertCoin(t, "remainder", tc.want.Remainder, got.Remainder)
			if got.BountyBps != tc.bounty || got.CommitteeTipBps != tc.committee || got.GovernanceTipBps != tc.governance {
				t.Fatalf("unexpected applied shares: %d/%d/%d", got.BountyBps, got.CommitteeTipBps, got.GovernanceTipBps)
			}

			sum, err := got.Hacker.Add(got.Committee)
			if err == nil {
				sum, err = sum.Add(got.Governance)
			}
			if err == nil {
				sum, err = sum.Add(got.Remainder)
			}
			if err != nil {
				t.Fatalf("cannot sum the payout: %s", err)
			}
			if !sum.Equals(tc.total) {
				t.Fatalf("payout sums up to %s, want %s", sum, tc.total)
			}
		})
	}
}

func assertCoin(t testing.TB, name string, want, got coin.Coin) {
	t.Helper()
	if !want.Equals(got) {
		t.Errorf("unexpected %s share: want %s, got %s", name, want, got)
	}
}
