package models

// User is the learner record as stored in the document store. The Farcaster
// fid is the primary external identity; the wallet address is attached once
// the user connects a wallet.
type User struct {
	ID            string `json:"_id"`
	FID           int64  `json:"fid"`
	Username      string `json:"username,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
	XP            int64  `json:"xp"`
}

// MintedBadge is the advisory record a client writes after a successful
// on-chain mint. The contract remains authoritative for whether a badge
// exists; this record only short-circuits obviously duplicate requests.
type MintedBadge struct {
	UserID   string `json:"userId"`
	CourseID string `json:"courseId"`
	TokenID  int64  `json:"tokenId"`
	TxHash   string `json:"txHash"`
}
