// Package bounty contains RPC wrappers for Bounty Board contract.
package bounty

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// BountyBounty is a contract-specific bounty.Bounty type used by its methods.
type BountyBounty struct {
	ID *big.Int
	Creator util.Uint160
	Title string
	Description string
	ProofRequirements string
	Reward *big.Int
	Deadline *big.Int
	Completed bool
	SubmissionCount *big.Int
	WinnerCount *big.Int
}

// BountySubmissionInfo is a contract-specific bounty.SubmissionInfo type used by its methods.
type BountySubmissionInfo struct {
	Submitter util.Uint160
	ProofHash string
	Timestamp *big.Int
	Approved bool
	ApprovalCount *big.Int
	RejectCount *big.Int
	IsWinner bool
	RewardAmount *big.Int
	SubmissionTxRef string
	PayoutTxRef string
}

// BountyCreatedEvent represents "BountyCreated" event emitted by the contract.
type BountyCreatedEvent struct {
	BountyID *big.Int
	Creator util.Uint160
	Title string
	Reward *big.Int
	Deadline *big.Int
}

// ProofSubmittedEvent represents "ProofSubmitted" event emitted by the contract.
type ProofSubmittedEvent struct {
	BountyID *big.Int
	SubmissionID *big.Int
	Submitter util.Uint160
}

// BountyVotedEvent represents "BountyVoted" event emitted by the contract.
type BountyVotedEvent struct {
	BountyID *big.Int
	SubmissionID *big.Int
	Voter util.Uint160
	Approve bool
}

// SubmissionRejectedEvent represents "SubmissionRejected" event emitted by the contract.
type SubmissionRejectedEvent struct {
	BountyID *big.Int
	SubmissionID *big.Int
	Submitter util.Uint160
}

// PayoutSentEvent represents "PayoutSent" event emitted by the contract.
type PayoutSentEvent struct {
	BountyID *big.Int
	SubmissionID *big.Int
	Submitter util.Uint160
	Amount *big.Int
}

// BountyCompletedEvent represents "BountyCompleted" event emitted by the contract.
type BountyCompletedEvent struct {
	BountyID *big.Int
	WinnerCount *big.Int
}

// BountyCanceledEvent represents "BountyCanceled" event emitted by the contract.
type BountyCanceledEvent struct {
	BountyID *big.Int
	Creator util.Uint160
	Refund *big.Int
}

// ReputationUpdatedEvent represents "ReputationUpdated" event emitted by the contract.
type ReputationUpdatedEvent struct {
	Account util.Uint160
	Value *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Bounties invokes `bounties` method of contract.
func (c *ContractReader) Bounties() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "bounties"))
}

// BountiesExpanded is similar to Bounties (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) BountiesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "bounties", _numOfIteratorItems))
}

// BountyCount invokes `bountyCount` method of contract.
func (c *ContractReader) BountyCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "bountyCount"))
}

// GetBounty invokes `getBounty` method of contract.
func (c *ContractReader) GetBounty(bountyID *big.Int) (*BountyBounty, error) {
	return itemToBountyBounty(unwrap.Item(c.invoker.Call(c.hash, "getBounty", bountyID)))
}

// GetReputation invokes `getReputation` method of contract.
func (c *ContractReader) GetReputation(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getReputation", account))
}

// GetSubmission invokes `getSubmission` method of contract.
func (c *ContractReader) GetSubmission(bountyID *big.Int, submissionID *big.Int) (*BountySubmissionInfo, error) {
	return itemToBountySubmissionInfo(unwrap.Item(c.invoker.Call(c.hash, "getSubmission", bountyID, submissionID)))
}

// GetSubmissionCount invokes `getSubmissionCount` method of contract.
func (c *ContractReader) GetSubmissionCount(bountyID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSubmissionCount", bountyID))
}

// GetUserBounties invokes `getUserBounties` method of contract.
func (c *ContractReader) GetUserBounties(account util.Uint160) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "getUserBounties", account))
}

// GetUserSubmissions invokes `getUserSubmissions` method of contract.
func (c *ContractReader) GetUserSubmissions(account util.Uint160) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "getUserSubmissions", account))
}

// HasVotedOnSubmission invokes `hasVotedOnSubmission` method of contract.
func (c *ContractReader) HasVotedOnSubmission(bountyID *big.Int, submissionID *big.Int, voter util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasVotedOnSubmission", bountyID, submissionID, voter))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CancelBounty creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelBounty(bountyID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelBounty", bountyID)
}

// CancelBountyTransaction creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelBountyTransaction(bountyID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelBounty", bountyID)
}

// CancelBountyUnsigned creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelBountyUnsigned(bountyID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelBounty", nil, bountyID)
}

// CompleteBounty creates a transaction invoking `completeBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CompleteBounty(bountyID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "completeBounty", bountyID)
}

// CompleteBountyTransaction creates a transaction invoking `completeBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CompleteBountyTransaction(bountyID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "completeBounty", bountyID)
}

// CompleteBountyUnsigned creates a transaction invoking `completeBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CompleteBountyUnsigned(bountyID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "completeBounty", nil, bountyID)
}

// CreateBounty creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateBounty(creator util.Uint160, title string, description string, proofRequirements string, reward *big.Int, deadline *big.Int, escrowedValue *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createBounty", creator, title, description, proofRequirements, reward, deadline, escrowedValue)
}

// CreateBountyTransaction creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateBountyTransaction(creator util.Uint160, title string, description string, proofRequirements string, reward *big.Int, deadline *big.Int, escrowedValue *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createBounty", creator, title, description, proofRequirements, reward, deadline, escrowedValue)
}

// CreateBountyUnsigned creates a transaction invoking `createBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateBountyUnsigned(creator util.Uint160, title string, description string, proofRequirements string, reward *big.Int, deadline *big.Int, escrowedValue *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createBounty", nil, creator, title, description, proofRequirements, reward, deadline, escrowedValue)
}

// OnNEP17Payment creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnNEP17Payment(from util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentTransaction creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnNEP17PaymentTransaction(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentUnsigned creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnNEP17PaymentUnsigned(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onNEP17Payment", nil, from, amount, data)
}

// SetPayoutTxRef creates a transaction invoking `setPayoutTxRef` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPayoutTxRef(bountyID *big.Int, submissionID *big.Int, ref string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPayoutTxRef", bountyID, submissionID, ref)
}

// SetPayoutTxRefTransaction creates a transaction invoking `setPayoutTxRef` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPayoutTxRefTransaction(bountyID *big.Int, submissionID *big.Int, ref string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPayoutTxRef", bountyID, submissionID, ref)
}

// SetPayoutTxRefUnsigned creates a transaction invoking `setPayoutTxRef` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPayoutTxRefUnsigned(bountyID *big.Int, submissionID *big.Int, ref string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPayoutTxRef", nil, bountyID, submissionID, ref)
}

// SetSubmissionReward creates a transaction invoking `setSubmissionReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSubmissionReward(bountyID *big.Int, submissionID *big.Int, rewardAmount *big.Int, suppliedValue *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSubmissionReward", bountyID, submissionID, rewardAmount, suppliedValue)
}

// SetSubmissionRewardTransaction creates a transaction invoking `setSubmissionReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSubmissionRewardTransaction(bountyID *big.Int, submissionID *big.Int, rewardAmount *big.Int, suppliedValue *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSubmissionReward", bountyID, submissionID, rewardAmount, suppliedValue)
}

// SetSubmissionRewardUnsigned creates a transaction invoking `setSubmissionReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSubmissionRewardUnsigned(bountyID *big.Int, submissionID *big.Int, rewardAmount *big.Int, suppliedValue *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSubmissionReward", nil, bountyID, submissionID, rewardAmount, suppliedValue)
}

// SetSubmissionTxRef creates a transaction invoking `setSubmissionTxRef` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSubmissionTxRef(bountyID *big.Int, submissionID *big.Int, ref string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSubmissionTxRef", bountyID, submissionID, ref)
}

// SetSubmissionTxRefTransaction creates a transaction invoking `setSubmissionTxRef` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSubmissionTxRefTransaction(bountyID *big.Int, submissionID *big.Int, ref string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSubmissionTxRef", bountyID, submissionID, ref)
}

// SetSubmissionTxRefUnsigned creates a transaction invoking `setSubmissionTxRef` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSubmissionTxRefUnsigned(bountyID *big.Int, submissionID *big.Int, ref string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSubmissionTxRef", nil, bountyID, submissionID, ref)
}

// SubmitProof creates a transaction invoking `submitProof` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitProof(bountyID *big.Int, submitter util.Uint160, proofHash string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitProof", bountyID, submitter, proofHash)
}

// SubmitProofTransaction creates a transaction invoking `submitProof` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitProofTransaction(bountyID *big.Int, submitter util.Uint160, proofHash string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitProof", bountyID, submitter, proofHash)
}

// SubmitProofUnsigned creates a transaction invoking `submitProof` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitProofUnsigned(bountyID *big.Int, submitter util.Uint160, proofHash string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitProof", nil, bountyID, submitter, proofHash)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateReputation creates a transaction invoking `updateReputation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateReputation(account util.Uint160, delta *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateReputation", account, delta)
}

// UpdateReputationTransaction creates a transaction invoking `updateReputation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateReputationTransaction(account util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateReputation", account, delta)
}

// UpdateReputationUnsigned creates a transaction invoking `updateReputation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateReputationUnsigned(account util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateReputation", nil, account, delta)
}

// VoteOnSubmission creates a transaction invoking `voteOnSubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) VoteOnSubmission(bountyID *big.Int, submissionID *big.Int, voter util.Uint160, approve bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "voteOnSubmission", bountyID, submissionID, voter, approve)
}

// VoteOnSubmissionTransaction creates a transaction invoking `voteOnSubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VoteOnSubmissionTransaction(bountyID *big.Int, submissionID *big.Int, voter util.Uint160, approve bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "voteOnSubmission", bountyID, submissionID, voter, approve)
}

// VoteOnSubmissionUnsigned creates a transaction invoking `voteOnSubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VoteOnSubmissionUnsigned(bountyID *big.Int, submissionID *big.Int, voter util.Uint160, approve bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "voteOnSubmission", nil, bountyID, submissionID, voter, approve)
}

// itemToBountyBounty converts stack item into *BountyBounty.
func itemToBountyBounty(item stackitem.Item, err error) (*BountyBounty, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountyBounty)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountyBounty from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BountyBounty) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	res.Title, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.ProofRequirements, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ProofRequirements: %w", err)
	}

	index++
	res.Reward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	index++
	res.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	res.Completed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Completed: %w", err)
	}

	index++
	res.SubmissionCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionCount: %w", err)
	}

	index++
	res.WinnerCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field WinnerCount: %w", err)
	}

	return nil
}

// itemToBountySubmissionInfo converts stack item into *BountySubmissionInfo.
func itemToBountySubmissionInfo(item stackitem.Item, err error) (*BountySubmissionInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountySubmissionInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountySubmissionInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BountySubmissionInfo) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	res.ProofHash, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ProofHash: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.Approved, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Approved: %w", err)
	}

	index++
	res.ApprovalCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ApprovalCount: %w", err)
	}

	index++
	res.RejectCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RejectCount: %w", err)
	}

	index++
	res.IsWinner, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field IsWinner: %w", err)
	}

	index++
	res.RewardAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardAmount: %w", err)
	}

	index++
	res.SubmissionTxRef, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SubmissionTxRef: %w", err)
	}

	index++
	res.PayoutTxRef, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PayoutTxRef: %w", err)
	}

	return nil
}

// BountyCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyCreated" name from the provided [result.ApplicationLog].
func BountyCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyCreated" {
				continue
			}
			event := new(BountyCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *BountyCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.Title, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	index++
	e.Reward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	index++
	e.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	return nil
}

// ProofSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProofSubmitted" name from the provided [result.ApplicationLog].
func ProofSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProofSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProofSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProofSubmitted" {
				continue
			}
			event := new(ProofSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProofSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProofSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *ProofSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.SubmissionID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionID: %w", err)
	}

	index++
	e.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	return nil
}

// BountyVotedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyVoted" name from the provided [result.ApplicationLog].
func BountyVotedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyVotedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyVotedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyVoted" {
				continue
			}
			event := new(BountyVotedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyVotedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyVotedEvent or
// returns an error if it's not possible to do to so.
func (e *BountyVotedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.SubmissionID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Approve, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Approve: %w", err)
	}

	return nil
}

// SubmissionRejectedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionRejected" name from the provided [result.ApplicationLog].
func SubmissionRejectedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionRejectedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionRejectedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionRejected" {
				continue
			}
			event := new(SubmissionRejectedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionRejectedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionRejectedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionRejectedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.SubmissionID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionID: %w", err)
	}

	index++
	e.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	return nil
}

// PayoutSentEventsFromApplicationLog retrieves a set of all emitted events
// with "PayoutSent" name from the provided [result.ApplicationLog].
func PayoutSentEventsFromApplicationLog(log *result.ApplicationLog) ([]*PayoutSentEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PayoutSentEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PayoutSent" {
				continue
			}
			event := new(PayoutSentEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PayoutSentEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PayoutSentEvent or
// returns an error if it's not possible to do to so.
func (e *PayoutSentEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.SubmissionID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionID: %w", err)
	}

	index++
	e.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// BountyCompletedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyCompleted" name from the provided [result.ApplicationLog].
func BountyCompletedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyCompletedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyCompletedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyCompleted" {
				continue
			}
			event := new(BountyCompletedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyCompletedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyCompletedEvent or
// returns an error if it's not possible to do to so.
func (e *BountyCompletedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.WinnerCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field WinnerCount: %w", err)
	}

	return nil
}

// BountyCanceledEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyCanceled" name from the provided [result.ApplicationLog].
func BountyCanceledEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyCanceledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyCanceledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyCanceled" {
				continue
			}
			event := new(BountyCanceledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyCanceledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyCanceledEvent or
// returns an error if it's not possible to do to so.
func (e *BountyCanceledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.Refund, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Refund: %w", err)
	}

	return nil
}

// ReputationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationUpdated" name from the provided [result.ApplicationLog].
func ReputationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReputationUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReputationUpdated" {
				continue
			}
			event := new(ReputationUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReputationUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReputationUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}
