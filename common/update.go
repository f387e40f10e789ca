package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// CommitteeAddress returns the M = N/2+1 multisignature address of the chain
// committee.
func CommitteeAddress() []byte {
	committee := neo.GetCommittee()
	threshold := len(committee)/2 + 1

	return contract.CreateMultisigAccount(threshold, committee)
}

// HasUpdateAccess returns true if the contract can be updated.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}
