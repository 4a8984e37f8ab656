package rescue

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateTemplateMsg{}, migration.NoModification)
	migration.MustRegister(1, &CreateFactoryMsg{}, migration.NoModification)
	migration.MustRegister(1, &CreateInstanceMsg{}, migration.NoModification)
	migration.MustRegister(1, &InitializeMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferOwnershipMsg{}, migration.NoModification)
	migration.MustRegister(1, &AcceptOwnershipMsg{}, migration.NoModification)
	migration.MustRegister(1, &RenounceOwnershipMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateCommitteeMsg{}, migration.NoModification)
	migration.MustRegister(1, &RetrieveFundsMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateTemplateMsg)(nil)

func (CreateTemplateMsg) Path() string {
	return "rescue/create_template"
}

func (m *CreateTemplateMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

var _ weave.Msg = (*CreateFactoryMsg)(nil)

func (CreateFactoryMsg) Path() string {
	return "rescue/create_factory"
}

func (m *CreateFactoryMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Implementation", validateID(m.Implementation))
	errs = errors.AppendField(errs, "Governance", validateOptionalAddress(m.Governance))
	return errs
}

var _ weave.Msg = (*CreateInstanceMsg)(nil)

func (CreateInstanceMsg) Path() string {
	return "rescue/create_instance"
}

func (m *CreateInstanceMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "FactoryID", validateID(m.FactoryID))
	errs = errors.AppendField(errs, "Hacker", validateOptionalAddress(m.Hacker))
	errs = errors.AppendField(errs, "Committee", validateOptionalAddress(m.Committee))
	return errs
}

var _ weave.Msg = (*InitializeMsg)(nil)

func (InitializeMsg) Path() string {
	return "rescue/initialize"
}

func (m *InitializeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "InstanceID", validateID(m.InstanceID))
	errs = errors.AppendField(errs, "Hacker", validateOptionalAddress(m.Hacker))
	errs = errors.AppendField(errs, "Committee", validateOptionalAddress(m.Committee))
	errs = errors.AppendField(errs, "Governance", validateOptionalAddress(m.Governance))
	return errs
}

var _ weave.Msg = (*TransferOwnershipMsg)(nil)

func (TransferOwnershipMsg) Path() string {
	return "rescue/transfer_ownership"
}

func (m *TransferOwnershipMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "InstanceID", validateID(m.InstanceID))
	// An empty owner is rejected by the handler, after the signer was
	// authorized.
	errs = errors.AppendField(errs, "NewOwner", validateOptionalAddress(m.NewOwner))
	return errs
}

var _ weave.Msg = (*AcceptOwnershipMsg)(nil)

func (AcceptOwnershipMsg) Path() string {
	return "rescue/accept_ownership"
}

func (m *AcceptOwnershipMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "InstanceID", validateID(m.InstanceID))
	return errs
}

var _ weave.Msg = (*RenounceOwnershipMsg)(nil)

func (RenounceOwnershipMsg) Path() string {
	return "rescue/renounce_ownership"
}

func (m *RenounceOwnershipMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "InstanceID", validateID(m.InstanceID))
	return errs
}

var _ weave.Msg = (*UpdateCommitteeMsg)(nil)

func (UpdateCommitteeMsg) Path() string {
	return "rescue/update_committee"
}

func (m *UpdateCommitteeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "InstanceID", validateID(m.InstanceID))
	errs = errors.AppendField(errs, "Committee", validateOptionalAddress(m.Committee))
	return errs
}

var _ weave.Msg = (*RetrieveFundsMsg)(nil)

func (RetrieveFundsMsg) Path() string {
	return "rescue/retrieve_funds"
}

func (m *RetrieveFundsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "InstanceID", validateID(m.InstanceID))
	errs = errors.AppendField(errs, "Beneficiary", validateOptionalAddress(m.Beneficiary))
	if m.Ticker != "" && !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "%q", m.Ticker))
	}
	return errs
}

// GetDestination returns the address that receives whatever is left after
// the bounty and the tips are paid.
func (m *RetrieveFundsMsg) GetDestination() weave.Address {
	return m.Beneficiary
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "rescue/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Patch", m.Patch.Validate())
	}
	return errs
}

// validateID returns an error if given value is not a valid sequence ID.
func validateID(id []byte) error {
	if len(id) == 0 {
		return errors.ErrEmpty
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "ID must be 8 bytes long")
	}
	return nil
}
