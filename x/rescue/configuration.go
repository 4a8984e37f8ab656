package rescue

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if !coin.IsCC(c.NativeTicker) {
		errs = errors.AppendField(errs, "NativeTicker",
			errors.Wrapf(errors.ErrCurrency, "%q", c.NativeTicker))
	}
	return errs
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "rescue", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// resolveTicker returns the ticker that a release operates on. An empty
// ticker refers to the native currency of the chain.
func resolveTicker(db weave.ReadOnlyKVStore, ticker string) (string, error) {
	if ticker != "" {
		return ticker, nil
	}
	conf, err := loadConf(db)
	if err != nil {
		return "", err
	}
	return conf.NativeTicker, nil
}
