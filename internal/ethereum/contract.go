package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/metrics"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// InsuranceABI covers the calls the relay makes against the deployed policy contract.
const InsuranceABI = `[
	{"type":"function","name":"purchasePolicy","stateMutability":"payable","inputs":[
		{"name":"policyId","type":"bytes32"},{"name":"holder","type":"address"},
		{"name":"sumAssured","type":"uint256"},{"name":"expiry","type":"uint256"},
		{"name":"nonce","type":"uint256"},{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"claim","stateMutability":"nonpayable","inputs":[
		{"name":"policyId","type":"bytes32"},{"name":"holder","type":"address"},
		{"name":"amount","type":"uint256"},{"name":"nonce","type":"uint256"},
		{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"cancelPolicy","stateMutability":"nonpayable","inputs":[
		{"name":"policyId","type":"bytes32"},{"name":"holder","type":"address"},
		{"name":"refund","type":"uint256"},{"name":"nonce","type":"uint256"},
		{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"renewPolicy","stateMutability":"payable","inputs":[
		{"name":"policyId","type":"bytes32"},{"name":"holder","type":"address"},
		{"name":"newExpiry","type":"uint256"},{"name":"nonce","type":"uint256"},
		{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"policies","stateMutability":"view","inputs":[
		{"name":"","type":"bytes32"}],"outputs":[
		{"name":"holder","type":"address"},{"name":"premium","type":"uint256"},
		{"name":"sumAssured","type":"uint256"},{"name":"expiry","type":"uint256"},
		{"name":"isActive","type":"bool"},{"name":"isClaimed","type":"bool"}]}
]`

const (
	methodPurchase = "purchasePolicy"
	methodClaim    = "claim"
	methodCancel   = "cancelPolicy"
	methodRenew    = "renewPolicy"
	methodPolicies = "policies"
)

var (
	ErrPolicyNotFound  error = errors.New("policy not found on chain")
	ErrUnexpectedReply error = errors.New("unexpected contract reply")
)

// ParseInsuranceABI parses InsuranceABI.
func ParseInsuranceABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(InsuranceABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse insurance abi: %w", err)
	}
	return parsed, nil
}

// NewInsuranceContract binds the insurance ABI at address on backend.
func NewInsuranceContract(address common.Address, backend bind.ContractBackend) (*bind.BoundContract, error) {
	parsed, err := ParseInsuranceABI()
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, parsed, backend, backend, backend), nil
}

// ContractService relays admin-signed calls to the insurance contract.
// Sends are serialised so the relayer's account nonce is picked one tx at a time.
type ContractService struct {
	contract BoundContract
	client   EthClient
	opts     *bind.TransactOpts
	vault    common.Address

	mu sync.Mutex
}

func NewContractService(contract BoundContract, client EthClient, opts *bind.TransactOpts, vault common.Address) *ContractService {
	return &ContractService{
		contract: contract,
		client:   client,
		opts:     opts,
		vault:    vault,
	}
}

func (s *ContractService) PurchasePolicy(ctx context.Context, call PurchaseCall) (string, error) {
	return s.transact(ctx, call.Premium, methodPurchase,
		call.PolicyID, call.Holder, call.SumAssured, big.NewInt(call.Expiry), call.Nonce, call.Signature)
}

func (s *ContractService) Claim(ctx context.Context, call ClaimCall) (string, error) {
	return s.transact(ctx, nil, methodClaim,
		call.PolicyID, call.Holder, call.Amount, call.Nonce, call.Signature)
}

func (s *ContractService) CancelPolicy(ctx context.Context, call CancelCall) (string, error) {
	return s.transact(ctx, nil, methodCancel,
		call.PolicyID, call.Holder, call.Refund, call.Nonce, call.Signature)
}

func (s *ContractService) RenewPolicy(ctx context.Context, call RenewCall) (string, error) {
	return s.transact(ctx, call.Premium, methodRenew,
		call.PolicyID, call.Holder, big.NewInt(call.NewExpiry), call.Nonce, call.Signature)
}

func (s *ContractService) transact(ctx context.Context, value *big.Int, method string, params ...interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := *s.opts
	opts.Context = ctx
	opts.Value = value

	tx, err := s.contract.Transact(&opts, method, params...)
	metrics.RecordContractCall(method, err)
	if err != nil {
		return "", fmt.Errorf("send %s: %w", method, err)
	}
	return tx.Hash().Hex(), nil
}

// GetPolicy reads the policies(bytes32) mapping.
func (s *ContractService) GetPolicy(ctx context.Context, id common.Hash) (*OnChainPolicy, error) {
	var out []interface{}
	err := s.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodPolicies, id)
	metrics.RecordContractCall(methodPolicies, err)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", methodPolicies, err)
	}
	if len(out) != 6 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedReply, methodPolicies, len(out))
	}

	holder, okHolder := out[0].(common.Address)
	premium, okPremium := out[1].(*big.Int)
	sumAssured, okSum := out[2].(*big.Int)
	expiry, okExpiry := out[3].(*big.Int)
	isActive, okActive := out[4].(bool)
	isClaimed, okClaimed := out[5].(bool)
	if !(okHolder && okPremium && okSum && okExpiry && okActive && okClaimed) {
		return nil, fmt.Errorf("%w: %s field types", ErrUnexpectedReply, methodPolicies)
	}

	if holder == (common.Address{}) {
		return nil, fmt.Errorf("%w: %s", ErrPolicyNotFound, id.Hex())
	}

	return &OnChainPolicy{
		ID:         id,
		Holder:     holder,
		Premium:    premium,
		SumAssured: sumAssured,
		Expiry:     time.Unix(expiry.Int64(), 0).UTC(),
		IsActive:   isActive,
		IsClaimed:  isClaimed,
	}, nil
}

// VaultBalance returns the wei balance held by the vault at the latest block.
func (s *ContractService) VaultBalance(ctx context.Context) (*big.Int, error) {
	balance, err := s.client.BalanceAt(ctx, s.vault, nil)
	if err != nil {
		return nil, fmt.Errorf("get vault balance: %w", err)
	}
	return balance, nil
}

func (s *ContractService) VaultAddress() common.Address {
	return s.vault
}
