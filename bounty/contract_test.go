package bounty_test

import (
	"path"
	"strings"
	"testing"
	"time"

	"github.com/Vikash-8090-Yadav/bountyboard-contract/bounty/bountyconst"
	"github.com/Vikash-8090-Yadav/bountyboard-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const bountyPath = "."

const reward = int64(1000)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func newBountyInvoker(t *testing.T) (*neotest.Executor, *neotest.ContractInvoker) {
	e := newExecutor(t)

	ctr := neotest.CompileFile(t, e.CommitteeHash, bountyPath, path.Join(bountyPath, "config.yml"))
	e.DeployContract(t, ctr, nil)

	return e, e.CommitteeInvoker(ctr.Hash)
}

// msPerBlock is the block timestamp step of the test chain.
func msPerBlock(e *neotest.Executor) uint64 {
	return uint64(e.Chain.GetConfig().TimePerBlock / time.Millisecond)
}

// futureDeadline returns a deadline the given number of blocks ahead of the
// current top block.
func futureDeadline(t *testing.T, e *neotest.Executor, blocks uint64) int64 {
	return int64(e.TopBlock(t).Timestamp + blocks*msPerBlock(e))
}

// passDeadline produces empty blocks until the top block timestamp is
// strictly past the given deadline.
func passDeadline(t *testing.T, e *neotest.Executor, deadline int64) {
	for int64(e.TopBlock(t).Timestamp) <= deadline {
		e.AddNewBlock(t)
	}
}

func gasBalance(t *testing.T, e *neotest.Executor, acc util.Uint160) int64 {
	gasInvoker := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))

	res, err := gasInvoker.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)

	return res.Top().BigInt().Int64()
}

func itemInt(t *testing.T, item stackitem.Item) int64 {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func itemBool(t *testing.T, item stackitem.Item) bool {
	v, err := item.TryBool()
	require.NoError(t, err)
	return v
}

func findEvent(t *testing.T, aer *state.AppExecResult, name string) []stackitem.Item {
	for _, ev := range aer.Events {
		if ev.Name == name {
			items, ok := ev.Item.Value().([]stackitem.Item)
			require.True(t, ok)
			return items
		}
	}

	t.Fatalf("notification %s was not produced", name)
	return nil
}

func requireNoEvent(t *testing.T, aer *state.AppExecResult, name string) {
	for _, ev := range aer.Events {
		require.NotEqual(t, name, ev.Name)
	}
}

// createBounty publishes a bounty from the given account with a deadline the
// given number of blocks ahead of the top block and returns the new bounty ID
// together with the deadline.
func createBounty(t *testing.T, e *neotest.Executor, c *neotest.ContractInvoker, creator neotest.Signer, blocks uint64) (int64, int64) {
	deadline := futureDeadline(t, e, blocks)

	res, err := c.TestInvoke(t, "bountyCount")
	require.NoError(t, err)
	id := res.Top().BigInt().Int64() + 1

	c.WithSigners(creator).Invoke(t, stackitem.Make(id), "createBounty",
		creator.ScriptHash(), "title", "description", "requirements", reward, deadline, reward)

	return id, deadline
}

func submitProof(t *testing.T, c *neotest.ContractInvoker, submitter neotest.Signer, bountyID, expectedID int64, proof string) {
	c.WithSigners(submitter).Invoke(t, stackitem.Make(expectedID), "submitProof",
		bountyID, submitter.ScriptHash(), proof)
}

func voteOn(t *testing.T, c *neotest.ContractInvoker, voter neotest.Signer, bountyID, submissionID int64, approve bool) util.Uint256 {
	return c.WithSigners(voter).Invoke(t, stackitem.Null{}, "voteOnSubmission",
		bountyID, submissionID, voter.ScriptHash(), approve)
}

func getSubmission(t *testing.T, c *neotest.ContractInvoker, bountyID, submissionID int64) []stackitem.Item {
	res, err := c.TestInvoke(t, "getSubmission", bountyID, submissionID)
	require.NoError(t, err)
	return res.Top().Array()
}

func getBountyFields(t *testing.T, c *neotest.ContractInvoker, bountyID int64) []stackitem.Item {
	res, err := c.TestInvoke(t, "getBounty", bountyID)
	require.NoError(t, err)
	return res.Top().Array()
}

func TestCreateBounty(t *testing.T) {
	e, c := newBountyInvoker(t)

	const method = "createBounty"

	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)

	deadline := futureDeadline(t, e, 100)

	cCreator.InvokeFail(t, bountyconst.ErrInvalidDeadline, method, creator.ScriptHash(),
		"title", "descr", "reqs", reward, int64(0), reward)
	cCreator.InvokeFail(t, bountyconst.ErrInvalidReward, method, creator.ScriptHash(),
		"title", "descr", "reqs", int64(0), deadline, int64(0))
	cCreator.InvokeFail(t, bountyconst.ErrInvalidReward, method, creator.ScriptHash(),
		"title", "descr", "reqs", int64(-1), deadline, int64(-1))
	cCreator.InvokeFail(t, bountyconst.ErrEscrowMismatch, method, creator.ScriptHash(),
		"title", "descr", "reqs", reward, deadline, reward-1)

	stranger := c.NewAccount(t)
	c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, method,
		creator.ScriptHash(), "title", "descr", "reqs", reward, deadline, reward)

	balanceBefore := gasBalance(t, e, c.Hash)

	h := cCreator.Invoke(t, stackitem.Make(1), method, creator.ScriptHash(),
		"title", "descr", "reqs", reward, deadline, reward)

	aer := e.CheckHalt(t, h)
	ev := findEvent(t, aer, "BountyCreated")
	require.Equal(t, int64(1), itemInt(t, ev[0]))
	require.Equal(t, reward, itemInt(t, ev[3]))
	require.Equal(t, deadline, itemInt(t, ev[4]))

	// the whole reward is escrowed on the contract account
	require.Equal(t, balanceBefore+reward, gasBalance(t, e, c.Hash))

	fields := getBountyFields(t, c, 1)
	require.Equal(t, int64(1), itemInt(t, fields[0]))
	require.Equal(t, reward, itemInt(t, fields[5]))
	require.Equal(t, deadline, itemInt(t, fields[6]))
	require.False(t, itemBool(t, fields[7]))
	require.Equal(t, int64(0), itemInt(t, fields[8]))

	cCreator.Invoke(t, stackitem.Make(2), method, creator.ScriptHash(),
		"second", "descr", "reqs", reward, deadline, reward)

	res, err := c.TestInvoke(t, "bountyCount")
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Top().BigInt().Int64())

	res, err = c.TestInvoke(t, "getUserBounties", creator.ScriptHash())
	require.NoError(t, err)
	require.Len(t, res.Top().Array(), 2)

	c.InvokeFail(t, bountyconst.ErrNotFound, "getBounty", int64(42))
}

func TestSubmitProof(t *testing.T) {
	e, c := newBountyInvoker(t)

	const method = "submitProof"

	creator := c.NewAccount(t)
	id, deadline := createBounty(t, e, c, creator, 100)

	submitter := c.NewAccount(t)
	cSubmitter := c.WithSigners(submitter)

	cSubmitter.InvokeFail(t, bountyconst.ErrNotFound, method, int64(42), submitter.ScriptHash(), "QmProof")
	cSubmitter.InvokeFail(t, bountyconst.ErrInvalidProof, method, id, submitter.ScriptHash(), "")
	cSubmitter.InvokeFail(t, bountyconst.ErrInvalidProof, method, id, submitter.ScriptHash(),
		strings.Repeat("a", bountyconst.MaxProofHashLen+1))

	stranger := c.NewAccount(t)
	c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, method,
		id, submitter.ScriptHash(), "QmProof")

	h := cSubmitter.Invoke(t, stackitem.Make(0), method, id, submitter.ScriptHash(), "QmProof")

	aer := e.CheckHalt(t, h)
	ev := findEvent(t, aer, "ProofSubmitted")
	require.Equal(t, id, itemInt(t, ev[0]))
	require.Equal(t, int64(0), itemInt(t, ev[1]))

	cSubmitter.InvokeFail(t, bountyconst.ErrDuplicateSubmission, method, id, submitter.ScriptHash(), "QmOther")

	second := c.NewAccount(t)
	submitProof(t, c, second, id, 1, "QmSecond")

	res, err := c.TestInvoke(t, "getSubmissionCount", id)
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Top().BigInt().Int64())

	res, err = c.TestInvoke(t, "getUserSubmissions", submitter.ScriptHash())
	require.NoError(t, err)
	require.Len(t, res.Top().Array(), 1)

	fields := getSubmission(t, c, id, 0)
	require.Equal(t, "QmProof", string(fields[1].Value().([]byte)))
	require.False(t, itemBool(t, fields[3]))
	require.Equal(t, int64(0), itemInt(t, fields[7]))

	passDeadline(t, e, deadline)

	late := c.NewAccount(t)
	c.WithSigners(late).InvokeFail(t, bountyconst.ErrDeadlinePassed, method,
		id, late.ScriptHash(), "QmLate")
}

func TestVoteOnSubmission(t *testing.T) {
	e, c := newBountyInvoker(t)

	const method = "voteOnSubmission"

	creator := c.NewAccount(t)
	id, _ := createBounty(t, e, c, creator, 100)

	submitter := c.NewAccount(t)
	submitProof(t, c, submitter, id, 0, "QmProof")

	voter := c.NewAccount(t)
	cVoter := c.WithSigners(voter)

	cVoter.InvokeFail(t, bountyconst.ErrInvalidSubmission, method, id, int64(1), voter.ScriptHash(), true)
	c.WithSigners(submitter).InvokeFail(t, bountyconst.ErrSelfVote, method,
		id, int64(0), submitter.ScriptHash(), true)

	h := voteOn(t, c, voter, id, 0, true)
	aer := e.CheckHalt(t, h)
	ev := findEvent(t, aer, "BountyVoted")
	require.Equal(t, id, itemInt(t, ev[0]))
	require.True(t, itemBool(t, ev[3]))
	requireNoEvent(t, aer, "SubmissionRejected")

	res, err := c.TestInvoke(t, "hasVotedOnSubmission", id, int64(0), voter.ScriptHash())
	require.NoError(t, err)
	require.True(t, res.Top().Bool())

	fields := getSubmission(t, c, id, 0)
	require.True(t, itemBool(t, fields[3]))
	require.Equal(t, int64(1), itemInt(t, fields[4]))
	require.True(t, itemBool(t, fields[6]))

	cVoter.InvokeFail(t, bountyconst.ErrAlreadyVoted, method, id, int64(0), voter.ScriptHash(), false)

	// a later rejection flips the winning status back
	rejecter := c.NewAccount(t)
	h = c.WithSigners(rejecter).Invoke(t, stackitem.Null{}, method,
		id, int64(0), rejecter.ScriptHash(), false)

	aer = e.CheckHalt(t, h)
	ev = findEvent(t, aer, "SubmissionRejected")
	require.Equal(t, int64(0), itemInt(t, ev[1]))
	findEvent(t, aer, "BountyVoted")

	fields = getSubmission(t, c, id, 0)
	require.False(t, itemBool(t, fields[3]))
	require.Equal(t, int64(1), itemInt(t, fields[5]))
	require.False(t, itemBool(t, fields[6]))

	supporter := c.NewAccount(t)
	voteOn(t, c, supporter, id, 0, true)

	fields = getSubmission(t, c, id, 0)
	require.True(t, itemBool(t, fields[3]))
}

func TestSetSubmissionReward(t *testing.T) {
	e, c := newBountyInvoker(t)

	const method = "setSubmissionReward"

	creator := c.NewAccount(t)
	id, deadline := createBounty(t, e, c, creator, 20)

	first := c.NewAccount(t)
	submitProof(t, c, first, id, 0, "QmFirst")
	second := c.NewAccount(t)
	submitProof(t, c, second, id, 1, "QmSecond")

	voter := c.NewAccount(t)
	voteOn(t, c, voter, id, 0, true)

	cCreator := c.WithSigners(creator)
	cCreator.InvokeFail(t, bountyconst.ErrDeadlineNotReached, method, id, int64(0), int64(400), int64(400))

	passDeadline(t, e, deadline)

	stranger := c.NewAccount(t)
	c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, method,
		id, int64(0), int64(400), int64(400))

	cCreator.InvokeFail(t, bountyconst.ErrInvalidSubmission, method, id, int64(2), int64(400), int64(400))
	cCreator.InvokeFail(t, bountyconst.ErrInvalidReward, method, id, int64(0), int64(0), int64(0))
	cCreator.InvokeFail(t, bountyconst.ErrInvalidReward, method, id, int64(0), reward+1, reward+1)
	cCreator.InvokeFail(t, bountyconst.ErrValueMismatch, method, id, int64(0), int64(400), int64(300))
	cCreator.InvokeFail(t, bountyconst.ErrNotApproved, method, id, int64(1), int64(400), int64(400))

	balanceBefore := gasBalance(t, e, first.ScriptHash())

	h := cCreator.Invoke(t, stackitem.Null{}, method, id, int64(0), int64(400), int64(400))

	aer := e.CheckHalt(t, h)
	ev := findEvent(t, aer, "PayoutSent")
	require.Equal(t, id, itemInt(t, ev[0]))
	require.Equal(t, int64(400), itemInt(t, ev[3]))

	// the second submission is not approved, so the bounty stays open
	requireNoEvent(t, aer, "BountyCompleted")

	require.Equal(t, balanceBefore+400, gasBalance(t, e, first.ScriptHash()))

	fields := getSubmission(t, c, id, 0)
	require.Equal(t, int64(400), itemInt(t, fields[7]))

	bounty := getBountyFields(t, c, id)
	require.Equal(t, reward-400, itemInt(t, bounty[5]))
	require.False(t, itemBool(t, bounty[7]))
	require.Equal(t, int64(1), itemInt(t, bounty[9]))

	// votes on a rewarded submission are still recorded, but the fixed
	// reward no longer depends on them
	rejecter := c.NewAccount(t)
	voteOn(t, c, rejecter, id, 0, false)

	fields = getSubmission(t, c, id, 0)
	require.Equal(t, int64(1), itemInt(t, fields[5]))
	require.False(t, itemBool(t, fields[3]))
	require.Equal(t, int64(400), itemInt(t, fields[7]))

	cCreator.InvokeFail(t, bountyconst.ErrRewardAlreadySet, method, id, int64(0), int64(100), int64(100))
}

func TestBountyExhaustion(t *testing.T) {
	e, c := newBountyInvoker(t)

	creator := c.NewAccount(t)
	id, deadline := createBounty(t, e, c, creator, 20)

	submitter := c.NewAccount(t)
	submitProof(t, c, submitter, id, 0, "QmOnly")

	voter := c.NewAccount(t)
	voteOn(t, c, voter, id, 0, true)

	passDeadline(t, e, deadline)

	contractBefore := gasBalance(t, e, c.Hash)

	cCreator := c.WithSigners(creator)
	h := cCreator.Invoke(t, stackitem.Null{}, "setSubmissionReward", id, int64(0), int64(400), int64(400))

	aer := e.CheckHalt(t, h)
	findEvent(t, aer, "PayoutSent")
	ev := findEvent(t, aer, "BountyCompleted")
	require.Equal(t, id, itemInt(t, ev[0]))
	require.Equal(t, int64(1), itemInt(t, ev[1]))

	// the payout is funded by the supplied value while only the residual
	// escrow goes back to the creator, so escrow matching the paid amount
	// stays on the contract account
	require.Equal(t, contractBefore-(reward-400), gasBalance(t, e, c.Hash))

	bounty := getBountyFields(t, c, id)
	require.Equal(t, int64(0), itemInt(t, bounty[5]))
	require.True(t, itemBool(t, bounty[7]))

	// no further mutations are possible
	late := c.NewAccount(t)
	c.WithSigners(late).InvokeFail(t, bountyconst.ErrCompleted, "submitProof",
		id, late.ScriptHash(), "QmLate")
	c.WithSigners(late).InvokeFail(t, bountyconst.ErrCompleted, "voteOnSubmission",
		id, int64(0), late.ScriptHash(), true)
	cCreator.InvokeFail(t, bountyconst.ErrCompleted, "setSubmissionReward", id, int64(0), int64(100), int64(100))
	cCreator.InvokeFail(t, bountyconst.ErrCompleted, "completeBounty", id)
}

func TestCompleteBounty(t *testing.T) {
	e, c := newBountyInvoker(t)

	const method = "completeBounty"

	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)

	open, _ := createBounty(t, e, c, creator, 100)
	cCreator.InvokeFail(t, bountyconst.ErrDeadlineNotReached, method, open)

	id, deadline := createBounty(t, e, c, creator, 4)
	passDeadline(t, e, deadline)

	stranger := c.NewAccount(t)
	c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, method, id)

	contractBefore := gasBalance(t, e, c.Hash)

	h := cCreator.Invoke(t, stackitem.Null{}, method, id)

	aer := e.CheckHalt(t, h)
	ev := findEvent(t, aer, "BountyCompleted")
	require.Equal(t, id, itemInt(t, ev[0]))
	require.Equal(t, int64(0), itemInt(t, ev[1]))

	// explicit completion moves no funds
	require.Equal(t, contractBefore, gasBalance(t, e, c.Hash))

	bounty := getBountyFields(t, c, id)
	require.True(t, itemBool(t, bounty[7]))

	cCreator.InvokeFail(t, bountyconst.ErrCompleted, method, id)
}

func TestCancelBounty(t *testing.T) {
	e, c := newBountyInvoker(t)

	const method = "cancelBounty"

	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)

	withSubs, _ := createBounty(t, e, c, creator, 100)
	submitter := c.NewAccount(t)
	submitProof(t, c, submitter, withSubs, 0, "QmProof")
	cCreator.InvokeFail(t, bountyconst.ErrHasSubmissions, method, withSubs)

	id, _ := createBounty(t, e, c, creator, 100)

	stranger := c.NewAccount(t)
	c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, method, id)

	contractBefore := gasBalance(t, e, c.Hash)

	h := cCreator.Invoke(t, stackitem.Null{}, method, id)

	aer := e.CheckHalt(t, h)
	ev := findEvent(t, aer, "BountyCanceled")
	require.Equal(t, id, itemInt(t, ev[0]))
	require.Equal(t, reward, itemInt(t, ev[2]))

	require.Equal(t, contractBefore-reward, gasBalance(t, e, c.Hash))

	bounty := getBountyFields(t, c, id)
	require.True(t, itemBool(t, bounty[7]))
	require.Equal(t, int64(0), itemInt(t, bounty[5]))

	cCreator.InvokeFail(t, bountyconst.ErrCompleted, method, id)

	// the in-flight marker is released, further cancels work
	next, _ := createBounty(t, e, c, creator, 100)
	cCreator.Invoke(t, stackitem.Null{}, method, next)
}

func TestDeposit(t *testing.T) {
	e, c := newBountyInvoker(t)

	creator := c.NewAccount(t)
	id, _ := createBounty(t, e, c, creator, 100)

	before := getBountyFields(t, c, id)
	contractBefore := gasBalance(t, e, c.Hash)

	const deposit = int64(500)

	// plain GAS transfers are accepted and change no bounty's accounting
	gasInvoker := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))
	gasInvoker.Invoke(t, stackitem.NewBool(true), "transfer",
		gasInvoker.Committee.ScriptHash(), c.Hash, deposit, nil)

	require.Equal(t, contractBefore+deposit, gasBalance(t, e, c.Hash))

	after := getBountyFields(t, c, id)
	require.Equal(t, itemInt(t, before[5]), itemInt(t, after[5]))
	require.Equal(t, itemBool(t, before[7]), itemBool(t, after[7]))
	require.Equal(t, itemInt(t, before[8]), itemInt(t, after[8]))

	// any other NEP-17 token is not accepted
	neoInvoker := e.CommitteeInvoker(e.NativeHash(t, nativenames.Neo))
	neoInvoker.InvokeFail(t, "ABORT", "transfer",
		neoInvoker.Committee.ScriptHash(), c.Hash, int64(1), nil)
}

func TestUpdateReputation(t *testing.T) {
	e, c := newBountyInvoker(t)

	const method = "updateReputation"

	account := c.NewAccount(t)

	c.WithSigners(account).InvokeFail(t, "only committee can update reputation", method,
		account.ScriptHash(), int64(5))

	c.Invoke(t, stackitem.Null{}, method, account.ScriptHash(), int64(5))

	res, err := c.TestInvoke(t, "getReputation", account.ScriptHash())
	require.NoError(t, err)
	require.Equal(t, int64(5), res.Top().BigInt().Int64())

	h := c.Invoke(t, stackitem.Null{}, method, account.ScriptHash(), int64(-2))

	aer := e.CheckHalt(t, h)
	ev := findEvent(t, aer, "ReputationUpdated")
	require.Equal(t, int64(3), itemInt(t, ev[1]))

	res, err = c.TestInvoke(t, "getReputation", account.ScriptHash())
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Top().BigInt().Int64())
}

func TestTransactionReferences(t *testing.T) {
	e, c := newBountyInvoker(t)

	creator := c.NewAccount(t)
	id, deadline := createBounty(t, e, c, creator, 20)

	submitter := c.NewAccount(t)
	submitProof(t, c, submitter, id, 0, "QmProof")

	cSubmitter := c.WithSigners(submitter)
	cCreator := c.WithSigners(creator)

	cSubmitter.InvokeFail(t, bountyconst.ErrInvalidSubmission, "setSubmissionTxRef",
		id, int64(1), "0xabc")
	cSubmitter.InvokeFail(t, bountyconst.ErrInvalidTxRef, "setSubmissionTxRef",
		id, int64(0), "")
	cCreator.InvokeFail(t, common.ErrOwnerWitnessFailed, "setSubmissionTxRef",
		id, int64(0), "0xabc")

	cSubmitter.Invoke(t, stackitem.Null{}, "setSubmissionTxRef", id, int64(0), "0xabc")

	cCreator.InvokeFail(t, bountyconst.ErrNoPayout, "setPayoutTxRef", id, int64(0), "0xdef")

	voter := c.NewAccount(t)
	voteOn(t, c, voter, id, 0, true)
	passDeadline(t, e, deadline)
	cCreator.Invoke(t, stackitem.Null{}, "setSubmissionReward", id, int64(0), int64(400), int64(400))

	cSubmitter.InvokeFail(t, common.ErrOwnerWitnessFailed, "setPayoutTxRef",
		id, int64(0), "0xdef")
	cCreator.Invoke(t, stackitem.Null{}, "setPayoutTxRef", id, int64(0), "0xdef")

	fields := getSubmission(t, c, id, 0)
	require.Equal(t, "0xabc", string(fields[8].Value().([]byte)))
	require.Equal(t, "0xdef", string(fields[9].Value().([]byte)))
}

func TestUpdateAccess(t *testing.T) {
	_, c := newBountyInvoker(t)

	stranger := c.NewAccount(t)
	c.WithSigners(stranger).InvokeFail(t, "only committee can update contract", "update",
		[]byte{}, []byte{}, nil)
}

func TestVersion(t *testing.T) {
	_, c := newBountyInvoker(t)

	res, err := c.TestInvoke(t, "version")
	require.NoError(t, err)
	require.Equal(t, int64(common.Version), res.Top().BigInt().Int64())
}
