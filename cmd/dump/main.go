package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "LE script hash of the deployed Bounty Board contract")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing Bounty Board contract hash")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(*contractHash, "0x"))
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	const rootDir = "testdata"

	err = os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, h, rootDir, *chainLabel)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Bounty Board state is successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint string, contract util.Uint160, rootDir, label string) error {
	b, err := newRemoteBlockchain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	board, err := b.dumpBountyBoard(contract)
	if err != nil {
		return fmt.Errorf("collect contract state: %w", err)
	}

	board.Label = label

	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dump: %w", err)
	}

	err = os.WriteFile(filepath.Join(rootDir, label+".json"), data, 0600)
	if err != nil {
		return fmt.Errorf("write dump: %w", err)
	}

	return nil
}
