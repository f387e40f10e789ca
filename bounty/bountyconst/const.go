// Package bountyconst contains constants and error message values of the
// Bounty Board contract shared between the contract itself, its RPC wrappers
// and tests.
package bountyconst

const (
	// MaxProofHashLen is the longest accepted IPFS proof reference.
	MaxProofHashLen = 100
	// MaxTxRefLen is the longest accepted free-form transaction reference
	// string for submission/payout side tables.
	MaxTxRefLen = 256
)

const (
	// ErrNotFound is returned if the requested bounty is missing.
	ErrNotFound = "bounty not found"
	// ErrInvalidDeadline is returned if a bounty deadline is not strictly
	// in the future at creation time.
	ErrInvalidDeadline = "deadline must be in the future"
	// ErrInvalidReward is returned on non-positive reward values, or on a
	// payout exceeding the remaining bounty reward.
	ErrInvalidReward = "invalid reward amount"
	// ErrEscrowMismatch is returned if the escrowed value of createBounty
	// does not equal the declared reward.
	ErrEscrowMismatch = "escrowed value must equal reward"
	// ErrValueMismatch is returned if the value supplied to
	// setSubmissionReward does not equal the reward amount.
	ErrValueMismatch = "supplied value must equal reward amount"
	// ErrCompleted is returned on mutation attempts against an already
	// completed bounty.
	ErrCompleted = "bounty already completed"
	// ErrDeadlineNotReached is returned if completeBounty is called before
	// the bounty deadline.
	ErrDeadlineNotReached = "deadline has not been reached"
	// ErrDeadlinePassed is returned on submissions after the deadline.
	ErrDeadlinePassed = "deadline has passed"
	// ErrInvalidProof is returned on an empty or oversized proof hash.
	ErrInvalidProof = "invalid proof hash"
	// ErrDuplicateSubmission is returned if the submitter already has a
	// submission on the bounty.
	ErrDuplicateSubmission = "proof already submitted"
	// ErrInvalidSubmission is returned on an out-of-range submission index.
	ErrInvalidSubmission = "invalid submission"
	// ErrAlreadyVoted is returned on a repeated vote from the same account
	// on the same submission.
	ErrAlreadyVoted = "already voted on this submission"
	// ErrSelfVote is returned if a submitter votes on their own submission.
	ErrSelfVote = "cannot vote on own submission"
	// ErrNotApproved is returned on a payout attempt against a submission
	// whose rejections are not outnumbered by approvals.
	ErrNotApproved = "submission is not approved"
	// ErrRewardAlreadySet is returned on a second payout attempt against
	// the same submission.
	ErrRewardAlreadySet = "reward already set for this submission"
	// ErrHasSubmissions is returned if cancelBounty is called on a bounty
	// that already received submissions.
	ErrHasSubmissions = "bounty already has submissions"
	// ErrReentrantPayout is returned on a nested invocation of a
	// payout-capable method.
	ErrReentrantPayout = "reentrant payout call"
	// ErrTransferFailed is returned if GAS transfer fails; the transaction
	// is aborted and every state change of the call is rolled back.
	ErrTransferFailed = "failed to transfer funds, aborting"
	// ErrInvalidTxRef is returned on an oversized transaction reference.
	ErrInvalidTxRef = "invalid transaction reference"
	// ErrNoPayout is returned if a payout transaction reference is set for
	// a submission that has not been rewarded.
	ErrNoPayout = "submission has no payout"
)
