package bounty

import (
	"github.com/Vikash-8090-Yadav/bountyboard-contract/bounty/bountyconst"
	"github.com/Vikash-8090-Yadav/bountyboard-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Bounty is an escrowed task published by its creator.
	Bounty struct {
		ID                int
		Creator           interop.Hash160
		Title             string
		Description       string
		ProofRequirements string
		// Remaining reward. Starts at the full escrowed amount and
		// decreases by exactly each payout made.
		Reward          int
		Deadline        int
		Completed       bool
		SubmissionCount int
		WinnerCount     int
	}

	// Submission is a claim of bounty completion referencing an opaque
	// proof.
	Submission struct {
		Submitter     interop.Hash160
		ProofHash     string
		Timestamp     int
		Approved      bool
		ApprovalCount int
		RejectCount   int
		IsWinner      bool
		// Zero until a payout is executed, permanently fixed afterwards.
		RewardAmount int
	}

	// SubmissionInfo extends Submission with the free-form transaction
	// references populated by the interface layer.
	SubmissionInfo struct {
		Submitter       interop.Hash160
		ProofHash       string
		Timestamp       int
		Approved        bool
		ApprovalCount   int
		RejectCount     int
		IsWinner        bool
		RewardAmount    int
		SubmissionTxRef string
		PayoutTxRef     string
	}
)

const (
	bountyCountKey = "count"
	payoutLockKey  = "lock"

	bountyPrefix        = 'B'
	submissionPrefix    = 'S'
	submittedPrefix     = 'H'
	votePrefix          = 'V'
	creatorPrefix       = 'O'
	submitterPrefix     = 'U'
	reputationPrefix    = 'R'
	submissionRefPrefix = 'T'
	payoutRefPrefix     = 'P'

	// escrowDetails marks GAS transfers the contract pulls in itself, so
	// that onNEP17Payment can tell them apart from plain deposits.
	escrowDetails = "\x62\x01"

	idSize = 4
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	storage.Put(ctx, bountyCountKey, 0)
	runtime.Log("bounty contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("bounty contract updated")
}

// OnNEP17Payment is a callback for the NEP-17 compatible native GAS contract.
// Escrow transfers initiated by the contract itself are marked with details
// and handled by the initiating method. Any other incoming GAS is accepted as
// a plain deposit and does not change any bounty's accounting.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, []byte(gas.Hash)) {
		common.AbortWithMessage("only GAS is accepted")
	}

	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	if data != nil && common.BytesEqual(data.([]byte), []byte(escrowDetails)) {
		return
	}

	runtime.Log("deposit accepted")
}

// CreateBounty escrows exactly reward GAS from the creator account and
// records a new bounty. Deadline is a millisecond timestamp that must be
// strictly after the current block time. EscrowedValue must equal reward;
// it is the amount pulled from the creator. The new sequential bounty ID
// (starting from 1) is returned.
//
// It produces BountyCreated notification.
func CreateBounty(creator interop.Hash160, title, description, proofRequirements string, reward, deadline, escrowedValue int) int {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(creator)

	if deadline <= runtime.GetTime() {
		panic(bountyconst.ErrInvalidDeadline)
	}
	if reward <= 0 {
		panic(bountyconst.ErrInvalidReward)
	}
	if escrowedValue != reward {
		panic(bountyconst.ErrEscrowMismatch)
	}

	id := storage.Get(ctx, bountyCountKey).(int) + 1
	storage.Put(ctx, bountyCountKey, id)

	b := Bounty{
		ID:                id,
		Creator:           creator,
		Title:             title,
		Description:       description,
		ProofRequirements: proofRequirements,
		Reward:            reward,
		Deadline:          deadline,
		Completed:         false,
		SubmissionCount:   0,
		WinnerCount:       0,
	}
	putBounty(ctx, b)
	storage.Put(ctx, accountIndexKey(creatorPrefix, creator, id), id)

	if !gas.Transfer(creator, runtime.GetExecutingScriptHash(), escrowedValue, []byte(escrowDetails)) {
		panic(bountyconst.ErrTransferFailed)
	}

	runtime.Notify("BountyCreated", id, creator, title, reward, deadline)

	return id
}

// SubmitProof appends a submission with an opaque IPFS proof reference to an
// open bounty. One submission per account per bounty is allowed, and only
// until the bounty deadline. The new 0-based submission ID is returned.
//
// It produces ProofSubmitted notification.
func SubmitProof(bountyID int, submitter interop.Hash160, proofHash string) int {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(submitter)

	b := getBounty(ctx, bountyID)
	if b.Completed {
		panic(bountyconst.ErrCompleted)
	}
	if runtime.GetTime() > b.Deadline {
		panic(bountyconst.ErrDeadlinePassed)
	}
	if len(proofHash) == 0 || len(proofHash) > bountyconst.MaxProofHashLen {
		panic(bountyconst.ErrInvalidProof)
	}

	submittedK := submittedKey(bountyID, submitter)
	if storage.Get(ctx, submittedK) != nil {
		panic(bountyconst.ErrDuplicateSubmission)
	}

	id := b.SubmissionCount
	b.SubmissionCount = id + 1
	putBounty(ctx, b)

	s := Submission{
		Submitter:     submitter,
		ProofHash:     proofHash,
		Timestamp:     runtime.GetTime(),
		Approved:      false,
		ApprovalCount: 0,
		RejectCount:   0,
		IsWinner:      false,
		RewardAmount:  0,
	}
	putSubmission(ctx, bountyID, id, s)

	storage.Put(ctx, submittedK, true)
	storage.Put(ctx, accountIndexKey(submitterPrefix, submitter, bountyID), bountyID)

	runtime.Notify("ProofSubmitted", bountyID, id, submitter)

	return id
}

// VoteOnSubmission records a one-time approval or rejection vote and
// recomputes the submission's winning status as approvalCount > rejectCount.
// The status is not sticky: later rejections can flip a winning submission
// back until a reward is assigned. Submitters cannot vote on their own
// submissions.
//
// It produces BountyVoted notification and, on a rejection, SubmissionRejected
// notification.
func VoteOnSubmission(bountyID, submissionID int, voter interop.Hash160, approve bool) {
	ctx := storage.GetContext()

	common.CheckWitness(voter)

	b := getBounty(ctx, bountyID)
	if submissionID < 0 || submissionID >= b.SubmissionCount {
		panic(bountyconst.ErrInvalidSubmission)
	}
	if b.Completed {
		panic(bountyconst.ErrCompleted)
	}

	voteK := voteKey(bountyID, submissionID, voter)
	if storage.Get(ctx, voteK) != nil {
		panic(bountyconst.ErrAlreadyVoted)
	}

	s := getSubmission(ctx, bountyID, submissionID)
	if common.BytesEqual(voter, s.Submitter) {
		panic(bountyconst.ErrSelfVote)
	}

	storage.Put(ctx, voteK, true)

	if approve {
		s.ApprovalCount = s.ApprovalCount + 1
	} else {
		s.RejectCount = s.RejectCount + 1
	}
	s.Approved = s.ApprovalCount > s.RejectCount
	s.IsWinner = s.Approved
	putSubmission(ctx, bountyID, submissionID, s)

	runtime.Notify("BountyVoted", bountyID, submissionID, voter, approve)
	if !approve {
		runtime.Notify("SubmissionRejected", bountyID, submissionID, s.Submitter)
	}
}

// SetSubmissionReward executes a one-time payout for an approved submission.
// It can be invoked only by the bounty creator after the deadline, and the
// creator must supply the reward amount as fresh value: suppliedValue GAS is
// pulled from the creator account within the call. Internal accounting is
// updated strictly before the reward transfer, the transfer failure aborts
// the whole transaction, and the method cannot be re-entered while a payout
// is in flight.
//
// When every submission of the bounty is approved and rewarded, the bounty is
// exhausted: the remaining reward balance is returned to the creator and the
// bounty is marked completed.
//
// It produces PayoutSent notification and, on exhaustion, BountyCompleted
// notification.
func SetSubmissionReward(bountyID, submissionID, rewardAmount, suppliedValue int) {
	ctx := storage.GetContext()

	if storage.Get(ctx, payoutLockKey) != nil {
		panic(bountyconst.ErrReentrantPayout)
	}
	storage.Put(ctx, payoutLockKey, true)

	b := getBounty(ctx, bountyID)
	if b.Completed {
		panic(bountyconst.ErrCompleted)
	}
	if runtime.GetTime() <= b.Deadline {
		panic(bountyconst.ErrDeadlineNotReached)
	}

	common.CheckOwnerWitness(b.Creator)

	if submissionID < 0 || submissionID >= b.SubmissionCount {
		panic(bountyconst.ErrInvalidSubmission)
	}
	if rewardAmount <= 0 || rewardAmount > b.Reward {
		panic(bountyconst.ErrInvalidReward)
	}
	if suppliedValue != rewardAmount {
		panic(bountyconst.ErrValueMismatch)
	}

	s := getSubmission(ctx, bountyID, submissionID)
	if !s.Approved {
		panic(bountyconst.ErrNotApproved)
	}
	if s.RewardAmount != 0 {
		panic(bountyconst.ErrRewardAlreadySet)
	}

	contractHash := runtime.GetExecutingScriptHash()
	if !gas.Transfer(b.Creator, contractHash, suppliedValue, []byte(escrowDetails)) {
		panic(bountyconst.ErrTransferFailed)
	}

	s.RewardAmount = rewardAmount
	putSubmission(ctx, bountyID, submissionID, s)

	b.Reward = b.Reward - rewardAmount
	b.WinnerCount = b.WinnerCount + 1
	putBounty(ctx, b)

	if !gas.Transfer(contractHash, s.Submitter, rewardAmount, nil) {
		panic(bountyconst.ErrTransferFailed)
	}

	runtime.Notify("PayoutSent", bountyID, submissionID, s.Submitter, rewardAmount)

	if allRewarded(ctx, bountyID, b.SubmissionCount) {
		residual := b.Reward
		b.Reward = 0
		b.Completed = true
		putBounty(ctx, b)

		if residual > 0 {
			if !gas.Transfer(contractHash, b.Creator, residual, nil) {
				panic(bountyconst.ErrTransferFailed)
			}
		}

		runtime.Notify("BountyCompleted", bountyID, 1)
	}

	storage.Delete(ctx, payoutLockKey)
}

// CompleteBounty marks a bounty completed after its deadline. It can be
// invoked only by the bounty creator. This path does not move any funds:
// escrow left over after payouts stays on the contract account.
//
// It produces BountyCompleted notification.
func CompleteBounty(bountyID int) {
	ctx := storage.GetContext()

	b := getBounty(ctx, bountyID)
	if b.Completed {
		panic(bountyconst.ErrCompleted)
	}
	if runtime.GetTime() <= b.Deadline {
		panic(bountyconst.ErrDeadlineNotReached)
	}

	common.CheckOwnerWitness(b.Creator)

	b.Completed = true
	putBounty(ctx, b)

	runtime.Notify("BountyCompleted", bountyID, 0)
}

// CancelBounty closes a bounty that has not received any submissions yet and
// refunds the whole escrow to the creator. It can be invoked only by the
// bounty creator.
//
// It produces BountyCanceled notification.
func CancelBounty(bountyID int) {
	ctx := storage.GetContext()

	if storage.Get(ctx, payoutLockKey) != nil {
		panic(bountyconst.ErrReentrantPayout)
	}
	storage.Put(ctx, payoutLockKey, true)

	b := getBounty(ctx, bountyID)
	if b.Completed {
		panic(bountyconst.ErrCompleted)
	}
	if b.SubmissionCount != 0 {
		panic(bountyconst.ErrHasSubmissions)
	}

	common.CheckOwnerWitness(b.Creator)

	refund := b.Reward
	b.Reward = 0
	b.Completed = true
	putBounty(ctx, b)

	if refund > 0 {
		if !gas.Transfer(runtime.GetExecutingScriptHash(), b.Creator, refund, nil) {
			panic(bountyconst.ErrTransferFailed)
		}
	}

	runtime.Notify("BountyCanceled", bountyID, b.Creator, refund)

	storage.Delete(ctx, payoutLockKey)
}

// UpdateReputation adjusts the reserved per-account reputation counter. None
// of the bounty operations mutate the counter; it is an extension point for
// the committee.
//
// It produces ReputationUpdated notification.
func UpdateReputation(account interop.Hash160, delta int) {
	if !common.HasUpdateAccess() {
		panic("only committee can update reputation")
	}

	ctx := storage.GetContext()
	value := getReputation(ctx, account) + delta
	storage.Put(ctx, reputationKey(account), value)

	runtime.Notify("ReputationUpdated", account, value)
}

// SetSubmissionTxRef stores a free-form transaction reference for a
// submission. It can be invoked only by the submitter. The reference is
// opaque to the contract and is populated by the interface layer.
func SetSubmissionTxRef(bountyID, submissionID int, ref string) {
	ctx := storage.GetContext()

	b := getBounty(ctx, bountyID)
	if submissionID < 0 || submissionID >= b.SubmissionCount {
		panic(bountyconst.ErrInvalidSubmission)
	}
	if len(ref) == 0 || len(ref) > bountyconst.MaxTxRefLen {
		panic(bountyconst.ErrInvalidTxRef)
	}

	s := getSubmission(ctx, bountyID, submissionID)
	common.CheckOwnerWitness(s.Submitter)

	storage.Put(ctx, refKey(submissionRefPrefix, bountyID, submissionID), ref)
}

// SetPayoutTxRef stores a free-form transaction reference for an executed
// payout. It can be invoked only by the bounty creator and only after the
// submission has been rewarded.
func SetPayoutTxRef(bountyID, submissionID int, ref string) {
	ctx := storage.GetContext()

	b := getBounty(ctx, bountyID)
	if submissionID < 0 || submissionID >= b.SubmissionCount {
		panic(bountyconst.ErrInvalidSubmission)
	}
	if len(ref) == 0 || len(ref) > bountyconst.MaxTxRefLen {
		panic(bountyconst.ErrInvalidTxRef)
	}

	s := getSubmission(ctx, bountyID, submissionID)
	if s.RewardAmount == 0 {
		panic(bountyconst.ErrNoPayout)
	}

	common.CheckOwnerWitness(b.Creator)

	storage.Put(ctx, refKey(payoutRefPrefix, bountyID, submissionID), ref)
}

// GetBounty returns the bounty record by its ID.
func GetBounty(bountyID int) Bounty {
	ctx := storage.GetReadOnlyContext()
	return getBounty(ctx, bountyID)
}

// GetSubmission returns the full submission record, including the
// transaction references populated by the interface layer.
func GetSubmission(bountyID, submissionID int) SubmissionInfo {
	ctx := storage.GetReadOnlyContext()

	b := getBounty(ctx, bountyID)
	if submissionID < 0 || submissionID >= b.SubmissionCount {
		panic(bountyconst.ErrInvalidSubmission)
	}

	s := getSubmission(ctx, bountyID, submissionID)

	return SubmissionInfo{
		Submitter:       s.Submitter,
		ProofHash:       s.ProofHash,
		Timestamp:       s.Timestamp,
		Approved:        s.Approved,
		ApprovalCount:   s.ApprovalCount,
		RejectCount:     s.RejectCount,
		IsWinner:        s.IsWinner,
		RewardAmount:    s.RewardAmount,
		SubmissionTxRef: getRef(ctx, submissionRefPrefix, bountyID, submissionID),
		PayoutTxRef:     getRef(ctx, payoutRefPrefix, bountyID, submissionID),
	}
}

// GetUserBounties returns IDs of all bounties created by the account.
func GetUserBounties(account interop.Hash160) []int {
	return accountIndex(creatorPrefix, account)
}

// GetUserSubmissions returns IDs of all bounties the account submitted to.
func GetUserSubmissions(account interop.Hash160) []int {
	return accountIndex(submitterPrefix, account)
}

// GetSubmissionCount returns the number of submissions of the bounty.
func GetSubmissionCount(bountyID int) int {
	ctx := storage.GetReadOnlyContext()
	return getBounty(ctx, bountyID).SubmissionCount
}

// HasVotedOnSubmission returns true if the voter has already voted on the
// submission.
func HasVotedOnSubmission(bountyID, submissionID int, voter interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, voteKey(bountyID, submissionID, voter)) != nil
}

// GetReputation returns the reserved reputation counter of the account.
func GetReputation(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getReputation(ctx, account)
}

// BountyCount returns the number of bounties ever created. Bounty IDs are
// sequential starting from 1, so this is also the highest assigned ID.
func BountyCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, bountyCountKey).(int)
}

// Bounties returns an iterator over all bounty records.
func Bounties() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{bountyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// allRewarded reports whether every submission of the bounty is approved and
// carries a non-zero reward, i.e. there is nothing left to pay out.
func allRewarded(ctx storage.Context, bountyID, submissionCount int) bool {
	for i := 0; i < submissionCount; i++ {
		s := getSubmission(ctx, bountyID, i)
		if !s.Approved || s.RewardAmount == 0 {
			return false
		}
	}

	return true
}

func getBounty(ctx storage.Context, id int) Bounty {
	data := storage.Get(ctx, bountyKey(id))
	if data == nil {
		panic(bountyconst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Bounty)
}

func putBounty(ctx storage.Context, b Bounty) {
	common.SetSerialized(ctx, bountyKey(b.ID), b)
}

func getSubmission(ctx storage.Context, bountyID, submissionID int) Submission {
	data := storage.Get(ctx, submissionKey(bountyID, submissionID))
	if data == nil {
		panic(bountyconst.ErrInvalidSubmission)
	}

	return std.Deserialize(data.([]byte)).(Submission)
}

func putSubmission(ctx storage.Context, bountyID, submissionID int, s Submission) {
	common.SetSerialized(ctx, submissionKey(bountyID, submissionID), s)
}

func getReputation(ctx storage.Context, account interop.Hash160) int {
	data := storage.Get(ctx, reputationKey(account))
	if data == nil {
		return 0
	}

	return data.(int)
}

func getRef(ctx storage.Context, prefix byte, bountyID, submissionID int) string {
	data := storage.Get(ctx, refKey(prefix, bountyID, submissionID))
	if data == nil {
		return ""
	}

	return data.(string)
}

func accountIndex(prefix byte, account interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()

	var ids []int

	it := storage.Find(ctx, append([]byte{prefix}, account...), storage.ValuesOnly)
	for iterator.Next(it) {
		ids = append(ids, iterator.Value(it).(int))
	}

	return ids
}

// indexBytes encodes a non-negative integer as a fixed-width little-endian
// key component, keeping composite storage keys unambiguous.
func indexBytes(n int) []byte {
	b := convert.ToBytes(n)
	for len(b) < idSize {
		b = append(b, 0)
	}

	return b
}

func bountyKey(id int) []byte {
	return append([]byte{bountyPrefix}, indexBytes(id)...)
}

func submissionKey(bountyID, submissionID int) []byte {
	k := append([]byte{submissionPrefix}, indexBytes(bountyID)...)
	return append(k, indexBytes(submissionID)...)
}

func submittedKey(bountyID int, account interop.Hash160) []byte {
	k := append([]byte{submittedPrefix}, indexBytes(bountyID)...)
	return append(k, account...)
}

func voteKey(bountyID, submissionID int, voter interop.Hash160) []byte {
	k := append([]byte{votePrefix}, indexBytes(bountyID)...)
	k = append(k, indexBytes(submissionID)...)
	return append(k, voter...)
}

func accountIndexKey(prefix byte, account interop.Hash160, id int) []byte {
	k := append([]byte{prefix}, account...)
	return append(k, indexBytes(id)...)
}

func reputationKey(account interop.Hash160) []byte {
	return append([]byte{reputationPrefix}, account...)
}

func refKey(prefix byte, bountyID, submissionID int) []byte {
	k := append([]byte{prefix}, indexBytes(bountyID)...)
	return append(k, indexBytes(submissionID)...)
}
