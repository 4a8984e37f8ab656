package app

import (
	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
)

// RescueCashController wraps provided cash controller implementation so that
// no coins can be moved to an account of a factory or a template.
func RescueCashController(c cash.Controller) cash.Controller {
	return &CashController{ctrl: c}
}

// CashController is a rescued specific cash.Controller implementation.
type CashController struct {
	ctrl cash.Controller
}

var _ cash.Controller = (*CashController)(nil)

func (c *CashController) MoveCoins(db weave.KVStore, src weave.Address, dest weave.Address, amount coin.Coin) error {
	if err := rescue.CheckPayable(db, dest); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := c.ctrl.MoveCoins(db, src, dest, amount); err != nil {
		return errors.Wrap(err, "move coins")
	}
	return nil
}

func (c *CashController) Balance(db weave.KVStore, a weave.Address) (coin.Coins, error) {
	return c.ctrl.Balance(db, a)
}
