package types

import (
	"crypto/sha256"

	cdkcommon "github.com/0xPolygon/eth-connector/common"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Proof binds a source chain log entry to a block header through an inclusion path.
// Its content is untrusted until the prover has verified it
type Proof struct {
	LogIndex     uint64          `json:"log_index"`
	LogEntryData hexutil.Bytes   `json:"log_entry_data"`
	ReceiptIndex uint64          `json:"receipt_index"`
	ReceiptData  hexutil.Bytes   `json:"receipt_data"`
	HeaderData   hexutil.Bytes   `json:"header_data"`
	Proof        []hexutil.Bytes `json:"proof"`
}

// Copy returns a deep copy of the proof
func (p *Proof) Copy() *Proof {
	if p == nil {
		return nil
	}
	res := &Proof{
		LogIndex:     p.LogIndex,
		LogEntryData: common.CopyBytes(p.LogEntryData),
		ReceiptIndex: p.ReceiptIndex,
		ReceiptData:  common.CopyBytes(p.ReceiptData),
		HeaderData:   common.CopyBytes(p.HeaderData),
	}
	if p.Proof != nil {
		res.Proof = make([]hexutil.Bytes, len(p.Proof))
		for i, node := range p.Proof {
			res.Proof[i] = common.CopyBytes(node)
		}
	}
	return res
}

// Fingerprint is the replay key of the proof:
// sha256(le_u64(log_index) || le_u64(receipt_index) || header_data)
func (p *Proof) Fingerprint() common.Hash {
	return Fingerprint(p.LogIndex, p.ReceiptIndex, p.HeaderData)
}

// Fingerprint computes the replay key for the position of a log entry inside a block
func Fingerprint(logIndex, receiptIndex uint64, headerData []byte) common.Hash {
	h := sha256.New()
	h.Write(cdkcommon.Uint64ToLittleEndianBytes(logIndex))
	h.Write(cdkcommon.Uint64ToLittleEndianBytes(receiptIndex))
	h.Write(headerData)
	return common.BytesToHash(h.Sum(nil))
}
