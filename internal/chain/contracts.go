package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// The escrow contract mediates every outgoing movement so the bytes32 ref
// (the transaction record id) rides along with each submission.
const escrowContractABI = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"ref","type":"bytes32"},{"name":"token","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"lock","stateMutability":"nonpayable","inputs":[{"name":"ref","type":"bytes32"},{"name":"token","type":"address"},{"name":"amount","type":"uint256"},{"name":"expiry","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"release","stateMutability":"nonpayable","inputs":[{"name":"ref","type":"bytes32"},{"name":"to","type":"address"}],"outputs":[]},
	{"type":"function","name":"refund","stateMutability":"nonpayable","inputs":[{"name":"ref","type":"bytes32"}],"outputs":[]}
]`

const erc20ABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

// Token pairs an ERC-20's address with its bound contract.
type Token struct {
	Address  common.Address
	Contract BoundContract
}

// BindEscrow binds the escrow contract at addr over an RPC client.
func BindEscrow(client *ethclient.Client, addr string) (BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(escrowContractABI))
	if err != nil {
		return nil, fmt.Errorf("parse escrow abi: %w", err)
	}

	return bind.NewBoundContract(common.HexToAddress(addr), parsed, client, client, client), nil
}

// BindTokens binds one ERC-20 contract per configured asset symbol.
func BindTokens(client *ethclient.Client, addresses map[string]string) (map[string]Token, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	tokens := make(map[string]Token, len(addresses))
	for symbol, addr := range addresses {
		tokenAddr := common.HexToAddress(addr)
		tokens[symbol] = Token{
			Address:  tokenAddr,
			Contract: bind.NewBoundContract(tokenAddr, parsed, client, client, client),
		}
	}

	return tokens, nil
}
