package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/Vikash-8090-Yadav/bountyboard-contract/rpc/bounty"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// wrapper over the Neo RPC client providing the read services needed for
// current command.
type remoteBlockchain struct {
	rpc *rpcclient.Client
	inv *invoker.Invoker

	currentBlock uint32
}

// boardDump is the JSON model of the whole Bounty Board contract state.
type boardDump struct {
	Label   string       `json:"label"`
	Block   uint32       `json:"block"`
	Version int64        `json:"version"`
	Count   int64        `json:"count"`
	Items   []bountyDump `json:"bounties"`
}

type bountyDump struct {
	ID                int64            `json:"id"`
	Creator           string           `json:"creator"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	ProofRequirements string           `json:"proofRequirements"`
	Reward            int64            `json:"reward"`
	Deadline          int64            `json:"deadline"`
	Completed         bool             `json:"completed"`
	WinnerCount       int64            `json:"winnerCount"`
	Submissions       []submissionDump `json:"submissions"`
}

type submissionDump struct {
	ID              int    `json:"id"`
	Submitter       string `json:"submitter"`
	ProofHash       string `json:"proofHash"`
	Timestamp       int64  `json:"timestamp"`
	Approved        bool   `json:"approved"`
	ApprovalCount   int64  `json:"approvalCount"`
	RejectCount     int64  `json:"rejectCount"`
	IsWinner        bool   `json:"isWinner"`
	RewardAmount    int64  `json:"rewardAmount"`
	SubmissionTxRef string `json:"submissionTxRef,omitempty"`
	PayoutTxRef     string `json:"payoutTxRef,omitempty"`
}

// newRemoteBlockchain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockchain(blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		inv:          invoker.New(c, nil),
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// dumpBountyBoard reads every bounty of the referenced contract together with
// its submissions.
func (x *remoteBlockchain) dumpBountyBoard(contract util.Uint160) (*boardDump, error) {
	reader := bounty.NewReader(x.inv, contract)

	version, err := reader.Version()
	if err != nil {
		return nil, fmt.Errorf("get contract version: %w", err)
	}

	count, err := reader.BountyCount()
	if err != nil {
		return nil, fmt.Errorf("get bounty count: %w", err)
	}

	res := &boardDump{
		Block:   x.currentBlock,
		Version: version.Int64(),
		Count:   count.Int64(),
	}

	for id := int64(1); id <= count.Int64(); id++ {
		b, err := reader.GetBounty(big.NewInt(id))
		if err != nil {
			return nil, fmt.Errorf("get bounty #%d: %w", id, err)
		}

		item := bountyDump{
			ID:                b.ID.Int64(),
			Creator:           b.Creator.StringLE(),
			Title:             b.Title,
			Description:       b.Description,
			ProofRequirements: b.ProofRequirements,
			Reward:            b.Reward.Int64(),
			Deadline:          b.Deadline.Int64(),
			Completed:         b.Completed,
			WinnerCount:       b.WinnerCount.Int64(),
		}

		for sub := int64(0); sub < b.SubmissionCount.Int64(); sub++ {
			s, err := reader.GetSubmission(big.NewInt(id), big.NewInt(sub))
			if err != nil {
				return nil, fmt.Errorf("get submission #%d of bounty #%d: %w", sub, id, err)
			}

			item.Submissions = append(item.Submissions, submissionDump{
				ID:              int(sub),
				Submitter:       s.Submitter.StringLE(),
				ProofHash:       s.ProofHash,
				Timestamp:       s.Timestamp.Int64(),
				Approved:        s.Approved,
				ApprovalCount:   s.ApprovalCount.Int64(),
				RejectCount:     s.RejectCount.Int64(),
				IsWinner:        s.IsWinner,
				RewardAmount:    s.RewardAmount.Int64(),
				SubmissionTxRef: s.SubmissionTxRef,
				PayoutTxRef:     s.PayoutTxRef,
			})
		}

		res.Items = append(res.Items, item)
	}

	return res, nil
}
