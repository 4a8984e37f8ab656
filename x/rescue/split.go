package rescue

import (
	"math/big"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

const (
	// wholeShareBps is the number of basis points representing the whole
	// balance.
	wholeShareBps = 10000

	// minBountyBps is the smallest bounty that can be paid to the hacker.
	minBountyBps = 1000
)

// payout describes how a single release is divided. All amounts are of the
// same ticker and sum up to the released balance.
type payout struct {
	Hacker     coin.Coin
	Committee  coin.Coin
	Governance coin.Coin
	Remainder  coin.Coin

	// Shares used to compute the amounts, in basis points.
	BountyBps        uint32
	CommitteeTipBps  uint32
	GovernanceTipBps uint32
}

// checkShares returns an error if given shares cannot be used to split a
// balance.
func checkShares(bountyBps, committeeTipBps, governanceTipBps uint32) error {
	if bountyBps < minBountyBps {
		return errors.Wrap(errors.ErrInput, "bounty must be at least 10%")
	}
	left := int64(wholeShareBps) - int64(bountyBps) - int64(committeeTipBps) - int64(governanceTipBps)
	if left < 0 {
		return errors.Wrapf(errors.ErrOverflow, "shares exceed %d basis points", wholeShareBps)
	}
	return nil
}

// splitBalance divides total according to given shares. Each share is
// rounded down to the smallest coin unit and the rounding dust is included
// in the remainder.
func splitBalance(total coin.Coin, bountyBps, committeeTipBps, governanceTipBps uint32) (*payout, error) {
	if err := checkShares(bountyBps, committeeTipBps, governanceTipBps); err != nil {
		return nil, err
	}
	if !total.IsPositive() {
		return nil, errors.Wrap(errors.ErrAmount, "balance must be greater than zero")
	}

	atoms := toAtoms(total)
	hacker := shareOf(atoms, bountyBps)
	committee := shareOf(atoms, committeeTipBps)
	governance := shareOf(atoms, governanceTipBps)

	remainder := new(big.Int).Set(atoms)
	remainder.Sub(remainder, hacker)
	remainder.Sub(remainder, committee)
	remainder.Sub(remainder, governance)
	if remainder.Sign() < 0 {
		return nil, errors.Wrap(errors.ErrOverflow, "shares exceed the balance")
	}

	var err error
	p := payout{
		BountyBps:        bountyBps,
		CommitteeTipBps:  committeeTipBps,
		GovernanceTipBps: governanceTipBps,
	}
	if p.Hacker, err = fromAtoms(hacker, total.Ticker); err != nil {
		return nil, errors.Wrap(err, "hacker")
	}
	if p.Committee, err = fromAtoms(committee, total.Ticker); err != nil {
		return nil, errors.Wrap(err, "committee")
	}
	if p.Governance, err = fromAtoms(governance, total.Ticker); err != nil {
		return nil, errors.Wrap(err, "governance")
	}
	if p.Remainder, err = fromAtoms(remainder, total.Ticker); err != nil {
		return nil, errors.Wrap(err, "remainder")
	}
	return &p, nil
}

// shareOf returns floor(atoms * bps / 10000).
func shareOf(atoms *big.Int, bps uint32) *big.Int {
	v := new(big.Int).Mul(atoms, big.NewInt(int64(bps)))
	return v.Quo(v, big.NewInt(wholeShareBps))
}

var fracUnit = big.NewInt(coin.FracUnit)

// toAtoms returns the value of the coin expressed in the smallest units.
func toAtoms(c coin.Coin) *big.Int {
	v := new(big.Int).Mul(big.NewInt(c.Whole), fracUnit)
	return v.Add(v, big.NewInt(c.Fractional))
}

func fromAtoms(atoms *big.Int, ticker string) (coin.Coin, error) {
	whole, frac := new(big.Int).QuoRem(atoms, fracUnit, new(big.Int))
	if !whole.IsInt64() || whole.Int64() > coin.MaxInt || whole.Int64() < coin.MinInt {
		return coin.Coin{}, errors.Wrap(errors.ErrOverflow, "whole value out of range")
	}
	return coin.NewCoin(whole.Int64(), frac.Int64(), ticker), nil
}
