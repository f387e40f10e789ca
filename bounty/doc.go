/*
Package bounty contains implementation of Bounty Board contract, a
trust-minimized task marketplace holding creator funds in GAS escrow.

A bounty creator escrows the full reward at creation time. Anyone can submit a
proof of completion before the deadline, any account except the submitter can
vote on a submission, and after the deadline the creator pays out approved
submissions one by one, funding each payout with fresh value. A bounty closes
either explicitly through CompleteBounty, automatically when every submission
is approved and rewarded, or through CancelBounty while it has no submissions.

Every failed check aborts the whole transaction, so no partial state change of
any method can ever be observed.

# Contract notifications

BountyCreated notification. This notification is produced when a creator
escrows a reward and publishes a new bounty.

	BountyCreated:
	  - name: bountyID
	    type: Integer
	  - name: creator
	    type: Hash160
	  - name: title
	    type: String
	  - name: reward
	    type: Integer
	  - name: deadline
	    type: Integer

ProofSubmitted notification. This notification is produced when an account
submits a proof of completion to an open bounty.

	ProofSubmitted:
	  - name: bountyID
	    type: Integer
	  - name: submissionID
	    type: Integer
	  - name: submitter
	    type: Hash160

BountyVoted notification. This notification is produced on every recorded
vote, approving or rejecting.

	BountyVoted:
	  - name: bountyID
	    type: Integer
	  - name: submissionID
	    type: Integer
	  - name: voter
	    type: Hash160
	  - name: approve
	    type: Boolean

SubmissionRejected notification. This notification is produced alongside
BountyVoted when the vote is a rejection.

	SubmissionRejected:
	  - name: bountyID
	    type: Integer
	  - name: submissionID
	    type: Integer
	  - name: submitter
	    type: Hash160

PayoutSent notification. This notification is produced when the creator
rewards an approved submission and the submitter receives the funds.

	PayoutSent:
	  - name: bountyID
	    type: Integer
	  - name: submissionID
	    type: Integer
	  - name: submitter
	    type: Hash160
	  - name: amount
	    type: Integer

BountyCompleted notification. This notification is produced when a bounty is
closed, either explicitly by the creator (winnerCount is 0) or automatically
once every submission is approved and rewarded (winnerCount is 1).

	BountyCompleted:
	  - name: bountyID
	    type: Integer
	  - name: winnerCount
	    type: Integer

BountyCanceled notification. This notification is produced when the creator
cancels a bounty without submissions and the escrow is refunded.

	BountyCanceled:
	  - name: bountyID
	    type: Integer
	  - name: creator
	    type: Hash160
	  - name: refund
	    type: Integer

ReputationUpdated notification. This notification is produced when the
committee adjusts the reserved reputation counter of an account.

	ReputationUpdated:
	  - name: account
	    type: Hash160
	  - name: value
	    type: Integer
*/
package bounty

/*
Contract storage model.

# Summary
Current conventions:
 <bid>: 4-byte little-endian bounty identifier, sequential starting from 1
 <sid>: 4-byte little-endian submission index, sequential starting from 0
 <account>: 20-byte NEO3 account script hash

Key-value storage format:
 - 'count' -> int
   the highest assigned bounty ID
 - 'lock' -> bool
   payout in-flight marker, present only within a payout invocation
 - 'B<bid>' -> std.Serialize(Bounty)
   bounty descriptors
 - 'S<bid><sid>' -> std.Serialize(Submission)
   submission descriptors
 - 'H<bid><account>' -> bool
   accounts that already submitted to the bounty
 - 'V<bid><sid><account>' -> bool
   accounts that already voted on the submission
 - 'O<account><bid>' -> <bid>
   bounties by creator
 - 'U<account><bid>' -> <bid>
   bounties the account submitted to
 - 'R<account>' -> int
   reserved reputation counter
 - 'T<bid><sid>' -> string
   free-form submission transaction reference
 - 'P<bid><sid>' -> string
   free-form payout transaction reference

# Escrow
The contract account holds the GAS escrowed for all open bounties. Transfers
pulled in by the contract itself are marked with a data payload so that
OnNEP17Payment can tell them apart from plain deposits.
*/
