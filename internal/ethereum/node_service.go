package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type EthService struct {
	client EthClient
}

func NewEthService(ethClient EthClient) *EthService {
	return &EthService{
		client: ethClient,
	}
}

// FetchTransactions looks up every hash concurrently. Transactions that are
// unknown or not yet mined come back as TxPending rather than as errors.
func (s *EthService) FetchTransactions(ctx context.Context, hashes []string) ([]*Transaction, error) {
	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get network id: %w", err)
	}
	signer := types.LatestSignerForChainID(chainID)

	resultsChan := make(chan *TxResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			res := s.lookup(ctx, signer, common.HexToHash(hashStr))
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transaction %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Transaction
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Transaction)
	}

	return results, aggrErr
}

func (s *EthService) lookup(ctx context.Context, signer types.Signer, hash common.Hash) *TxResult {
	pending := &TxResult{Transaction: &Transaction{Hash: hash.Hex(), Status: TxPending}}

	tx, isPending, err := s.client.TransactionByHash(ctx, hash)
	if errors.Is(err, goethereum.NotFound) {
		return pending
	}
	if err != nil {
		return &TxResult{Error: err}
	}
	if isPending {
		return pending
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if errors.Is(err, goethereum.NotFound) {
		return pending
	}
	if err != nil {
		return &TxResult{Error: err}
	}

	from, err := types.Sender(signer, tx)
	if err != nil {
		return &TxResult{Error: fmt.Errorf("recover sender: %w", err)}
	}

	status := TxReverted
	if receipt.Status == types.ReceiptStatusSuccessful {
		status = TxSucceeded
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}

	return &TxResult{
		Transaction: &Transaction{
			Hash:        tx.Hash().Hex(),
			Status:      status,
			BlockNumber: block,
			From:        from.Hex(),
			To:          to,
			GasUsed:     receipt.GasUsed,
			Value:       tx.Value().String(),
		},
	}
}
