// Package payment holds the display-only crypto payment instructions. The
// service never verifies transactions; it only tells the customer where to
// send funds, and fulfilment is confirmed manually out of band.
package payment

// Wallet describes one accepted blockchain network: the wallet address to
// pay into, the tokens accepted on it, and the QR image shown next to it.
type Wallet struct {
	Network string
	Tokens  []string
	Address string
	QRCode  string
}

// DefaultWallets lists the networks the store accepts payments on. EVM
// chains share one address.
func DefaultWallets() []Wallet {
	const evmAddress = "0x8a060c3c0ff590165aa55097ae8bf31fb754dd0d"
	return []Wallet{
		{
			Network: "BNB Smart Chain (BSC)",
			Tokens:  []string{"BNB", "BUSD", "USDT"},
			Address: evmAddress,
			QRCode:  "/qr/bsc.jpg",
		},
		{
			Network: "Solana",
			Tokens:  []string{"SOL", "USDC"},
			Address: "CYDe9a4Y1TD1uZJxuqeZftqCPYHA2spQNEzGkhRaze6T",
			QRCode:  "/qr/solana.jpg",
		},
		{
			Network: "Avalanche C-Chain",
			Tokens:  []string{"AVAX", "USDT", "USDC"},
			Address: evmAddress,
			QRCode:  "/qr/avalanche.jpg",
		},
		{
			Network: "Ethereum",
			Tokens:  []string{"ETH", "USDT", "USDC"},
			Address: evmAddress,
			QRCode:  "/qr/ethereum.jpg",
		},
		{
			Network: "Base",
			Tokens:  []string{"USDT", "USDC"},
			Address: evmAddress,
			QRCode:  "/qr/base.jpg",
		},
	}
}
