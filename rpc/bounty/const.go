package bounty

import (
	"github.com/Vikash-8090-Yadav/bountyboard-contract/bounty/bountyconst"
)

const (
	// NotFoundError is returned if the requested bounty is missing.
	NotFoundError = bountyconst.ErrNotFound

	// CompletedError is returned on mutation attempts against an already
	// completed bounty.
	CompletedError = bountyconst.ErrCompleted

	// DeadlinePassedError is returned on submissions after the bounty
	// deadline.
	DeadlinePassedError = bountyconst.ErrDeadlinePassed

	// DeadlineNotReachedError is returned on payout or completion attempts
	// before the bounty deadline.
	DeadlineNotReachedError = bountyconst.ErrDeadlineNotReached

	// NotApprovedError is returned on a payout attempt against an
	// unapproved submission.
	NotApprovedError = bountyconst.ErrNotApproved

	// RewardAlreadySetError is returned on a second payout attempt against
	// the same submission.
	RewardAlreadySetError = bountyconst.ErrRewardAlreadySet
)
