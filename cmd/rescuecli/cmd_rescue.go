package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/rescue/cmd/rescued/app"
	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave"
)

func cmdCreateTemplate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for registering a new rescue template. A template is an
implementation that factories clone. A template can never be initialized and
cannot hold any funds.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	tx := &app.Tx{
		Sum: &app.Tx_RescueCreateTemplateMsg{
			RescueCreateTemplateMsg: &rescue.CreateTemplateMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdCreateFactory(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for registering a new factory that clones given template.
`)
		fl.PrintDefaults()
	}
	var (
		implFl       = flSeq(fl, "implementation", "", "Sequence number of the template that is cloned.")
		governanceFl = flAddress(fl, "governance", "", "Optional address of the governance that every created instance is tipping.")
	)
	fl.Parse(args)

	if len(*implFl) == 0 {
		flagDie("implementation is required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_RescueCreateFactoryMsg{
			RescueCreateFactoryMsg: &rescue.CreateFactoryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Implementation: *implFl,
				Governance:     *governanceFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdCreateInstance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for deploying and initializing a new rescue instance using
given factory. Once created, the committee must accept the ownership.
`)
		fl.PrintDefaults()
	}
	var (
		factoryFl   = flSeq(fl, "factory", "1", "Sequence number of the factory used.")
		hackerFl    = flAddress(fl, "hacker", "", "Optional address of the hacker. If not provided the main signer is used.")
		committeeFl = flAddress(fl, "committee", "", "Address of the committee.")
	)
	fl.Parse(args)

	if len(*committeeFl) == 0 {
		flagDie("committee is required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_RescueCreateInstanceMsg{
			RescueCreateInstanceMsg: &rescue.CreateInstanceMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				FactoryID: *factoryFl,
				Hacker:    *hackerFl,
				Committee: *committeeFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdInitialize(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for initializing a rescue instance. An instance can be
initialized only once.
`)
		fl.PrintDefaults()
	}
	var (
		instanceFl   = flSeq(fl, "instance", "", "Sequence number of the instance.")
		hackerFl     = flAddress(fl, "hacker", "", "Address of the hacker.")
		committeeFl  = flAddress(fl, "committee", "", "Address of the committee.")
		governanceFl = flAddress(fl, "governance", "", "Optional address of the governance.")
	)
	fl.Parse(args)

	if len(*instanceFl) == 0 {
		flagDie("instance is required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_RescueInitializeMsg{
			RescueInitializeMsg: &rescue.InitializeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: *instanceFl,
				Hacker:     *hackerFl,
				Committee:  *committeeFl,
				Governance: *governanceFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdTransferOwnership(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for proposing a new owner of a rescue instance. The
transfer is complete only after the proposed owner accepts it.
`)
		fl.PrintDefaults()
	}
	var (
		instanceFl = flSeq(fl, "instance", "", "Sequence number of the instance.")
		ownerFl    = flAddress(fl, "owner", "", "Address of the proposed owner.")
	)
	fl.Parse(args)

	if len(*instanceFl) == 0 {
		flagDie("instance is required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_RescueTransferOwnershipMsg{
			RescueTransferOwnershipMsg: &rescue.TransferOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: *instanceFl,
				NewOwner:   *ownerFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdAcceptOwnership(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for accepting the ownership of a rescue instance. It must
be signed by the pending owner.
`)
		fl.PrintDefaults()
	}
	var (
		instanceFl = flSeq(fl, "instance", "", "Sequence number of the instance.")
	)
	fl.Parse(args)

	if len(*instanceFl) == 0 {
		flagDie("instance is required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_RescueAcceptOwnershipMsg{
			RescueAcceptOwnershipMsg: &rescue.AcceptOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: *instanceFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdRenounceOwnership(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for renouncing the ownership of a rescue instance. The
ownership returns to the hacker.
`)
		fl.PrintDefaults()
	}
	var (
		instanceFl = flSeq(fl, "instance", "", "Sequence number of the instance.")
	)
	fl.Parse(args)

	if len(*instanceFl) == 0 {
		flagDie("instance is required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_RescueRenounceOwnershipMsg{
			RescueRenounceOwnershipMsg: &rescue.RenounceOwnershipMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: *instanceFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdUpdateCommittee(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for reassigning the committee of a rescue instance. It
must be signed by the current committee. An empty committee resigns.
`)
		fl.PrintDefaults()
	}
	var (
		instanceFl  = flSeq(fl, "instance", "", "Sequence number of the instance.")
		committeeFl = flAddress(fl, "committee", "", "Address of the new committee.")
	)
	fl.Parse(args)

	if len(*instanceFl) == 0 {
		flagDie("instance is required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_RescueUpdateCommitteeMsg{
			RescueUpdateCommitteeMsg: &rescue.UpdateCommitteeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				InstanceID: *instanceFl,
				Committee:  *committeeFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdRetrieveFunds(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for withdrawing the whole balance of a rescue instance.
The balance is split between the hacker bounty, the committee tip, the
governance tip and the beneficiary. Shares are given in basis points.
`)
		fl.PrintDefaults()
	}
	var (
		instanceFl    = flSeq(fl, "instance", "", "Sequence number of the instance.")
		beneficiaryFl = flAddress(fl, "beneficiary", "", "Address that receives the remainder.")
		bountyFl      = fl.Uint("bounty", 1000, "Hacker bounty in basis points. Must be at least 1000.")
		committeeFl   = fl.Uint("committee-tip", 0, "Committee tip in basis points.")
		governanceFl  = fl.Uint("governance-tip", 0, "Governance tip in basis points.")
		tickerFl      = fl.String("ticker", "", "Ticker of the withdrawn currency. Native currency is used if not provided.")
	)
	fl.Parse(args)

	if len(*instanceFl) == 0 {
		flagDie("instance is required")
	}
	if len(*beneficiaryFl) == 0 {
		flagDie("beneficiary is required")
	}

	tx := &app.Tx{
		Sum: &app.Tx_RescueRetrieveFundsMsg{
			RescueRetrieveFundsMsg: &rescue.RetrieveFundsMsg{
				Metadata:         &weave.Metadata{Schema: 1},
				InstanceID:       *instanceFl,
				Beneficiary:      *beneficiaryFl,
				BountyBps:        uint32(*bountyFl),
				CommitteeTipBps:  uint32(*committeeFl),
				GovernanceTipBps: uint32(*governanceFl),
				Ticker:           *tickerFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdUpdateConfiguration(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for updating the rescue extension configuration. Only
provided values are changed.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl  = flAddress(fl, "owner", "", "Address of the new configuration owner.")
		tickerFl = fl.String("native-ticker", "", "Ticker of the native currency.")
	)
	fl.Parse(args)

	tx := &app.Tx{
		Sum: &app.Tx_RescueUpdateConfigurationMsg{
			RescueUpdateConfigurationMsg: &rescue.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &rescue.Configuration{
					Metadata:     &weave.Metadata{Schema: 1},
					Owner:        *ownerFl,
					NativeTicker: *tickerFl,
				},
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}
