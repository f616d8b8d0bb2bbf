package client

import "encoding/json"

// Info is the result of getinfo.
type Info struct {
	Version         int     `json:"version"`
	ProtocolVersion int     `json:"protocolversion"`
	ChainID         string  `json:"chainid"`
	Name            string  `json:"name"`
	Blocks          int64   `json:"blocks"`
	Longestchain    int64   `json:"longestchain"`
	Difficulty      float64 `json:"difficulty"`
	Testnet         bool    `json:"testnet"`
	Connections     int     `json:"connections"`
	Errors          string  `json:"errors"`
}

// BlockchainInfo is the result of getblockchaininfo.
type BlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	VerificationProgress float64 `json:"verificationprogress"`
	ChainWork            string  `json:"chainwork"`
	Pruned               bool    `json:"pruned"`
	SizeOnDisk           int64   `json:"size_on_disk"`
}

// Block is the verbose result of getblock.
type Block struct {
	Hash              string            `json:"hash"`
	Confirmations     int64             `json:"confirmations"`
	Size              int64             `json:"size"`
	Height            int64             `json:"height"`
	Version           int32             `json:"version"`
	MerkleRoot        string            `json:"merkleroot"`
	FinalSaplingRoot  string            `json:"finalsaplingroot"`
	Tx                []json.RawMessage `json:"tx"`
	Time              int64             `json:"time"`
	Nonce             string            `json:"nonce"`
	Bits              string            `json:"bits"`
	Difficulty        float64           `json:"difficulty"`
	ChainWork         string            `json:"chainwork"`
	BlockType         string            `json:"blocktype"`
	ValidationType    string            `json:"validationtype"`
	PreviousBlockHash string            `json:"previousblockhash"`
	NextBlockHash     string            `json:"nextblockhash"`
}

// BlockHeader is the result of getblockheader.
type BlockHeader struct {
	Hash              string  `json:"hash"`
	Confirmations     int64   `json:"confirmations"`
	Height            int64   `json:"height"`
	Version           int32   `json:"version"`
	MerkleRoot        string  `json:"merkleroot"`
	Time              int64   `json:"time"`
	Nonce             string  `json:"nonce"`
	Bits              string  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
	PreviousBlockHash string  `json:"previousblockhash"`
	NextBlockHash     string  `json:"nextblockhash"`
}

// BlockSubsidy is the result of getblocksubsidy.
type BlockSubsidy struct {
	Miner float64 `json:"miner"`
}

// ChainTip is one entry of getchaintips.
type ChainTip struct {
	Height    int64  `json:"height"`
	Hash      string `json:"hash"`
	BranchLen int64  `json:"branchlen"`
	Status    string `json:"status"`
}

// MempoolInfo is the result of getmempoolinfo.
type MempoolInfo struct {
	Size  int64 `json:"size"`
	Bytes int64 `json:"bytes"`
	Usage int64 `json:"usage"`
}

// MiningInfo is the result of getmininginfo.
type MiningInfo struct {
	Blocks           int64   `json:"blocks"`
	CurrentBlockSize int64   `json:"currentblocksize"`
	CurrentBlockTx   int64   `json:"currentblocktx"`
	AverageBlockFees float64 `json:"averageblockfees"`
	Difficulty       float64 `json:"difficulty"`
	Staking          bool    `json:"staking"`
	NetworkHashPS    float64 `json:"networkhashps"`
	PooledTx         int64   `json:"pooledtx"`
	Chain            string  `json:"chain"`
	Generate         bool    `json:"generate"`
	NumThreads       int     `json:"numthreads"`
	MergeMining      int     `json:"mergemining"`
}

// NetworkInfo is the result of getnetworkinfo.
type NetworkInfo struct {
	Version         int     `json:"version"`
	Subversion      string  `json:"subversion"`
	ProtocolVersion int     `json:"protocolversion"`
	Connections     int     `json:"connections"`
	Networks        []any   `json:"networks"`
	RelayFee        float64 `json:"relayfee"`
	Warnings        string  `json:"warnings"`
}

// TxOut is the result of gettxout.
type TxOut struct {
	BestBlock     string          `json:"bestblock"`
	Confirmations int64           `json:"confirmations"`
	Value         float64         `json:"value"`
	ScriptPubKey  json.RawMessage `json:"scriptPubKey"`
	Version       int32           `json:"version"`
	Coinbase      bool            `json:"coinbase"`
}

// TxOutSetInfo is the result of gettxoutsetinfo.
type TxOutSetInfo struct {
	Height          int64   `json:"height"`
	BestBlock       string  `json:"bestblock"`
	Transactions    int64   `json:"transactions"`
	TxOuts          int64   `json:"txouts"`
	BytesSerialized int64   `json:"bytes_serialized"`
	HashSerialized  string  `json:"hash_serialized"`
	TotalAmount     float64 `json:"total_amount"`
}

// RawTransaction is the verbose result of getrawtransaction and
// decoderawtransaction.
type RawTransaction struct {
	Hex           string            `json:"hex,omitempty"`
	Txid          string            `json:"txid"`
	Version       int32             `json:"version"`
	LockTime      int64             `json:"locktime"`
	ExpiryHeight  int64             `json:"expiryheight"`
	Vin           []json.RawMessage `json:"vin"`
	Vout          []json.RawMessage `json:"vout"`
	BlockHash     string            `json:"blockhash,omitempty"`
	Confirmations int64             `json:"confirmations,omitempty"`
	Time          int64             `json:"time,omitempty"`
	BlockTime     int64             `json:"blocktime,omitempty"`
}

// TxInput is one input of createrawtransaction.
type TxInput struct {
	Txid     string `json:"txid"`
	Vout     int    `json:"vout"`
	Sequence *int64 `json:"sequence,omitempty"`
}

// MultisigResult is the result of createmultisig.
type MultisigResult struct {
	Address      string `json:"address"`
	RedeemScript string `json:"redeemScript"`
}

// AddressBalance is the result of getaddressbalance.
type AddressBalance struct {
	Balance  int64 `json:"balance"`
	Received int64 `json:"received"`
}

// AddressDelta is one entry of getaddressdeltas and getaddressmempool.
type AddressDelta struct {
	Satoshis int64  `json:"satoshis"`
	Txid     string `json:"txid"`
	Index    int    `json:"index"`
	Height   int64  `json:"height,omitempty"`
	Address  string `json:"address"`
}

// AddressUTXO is one entry of getaddressutxos.
type AddressUTXO struct {
	Address     string `json:"address"`
	Txid        string `json:"txid"`
	OutputIndex int    `json:"outputIndex"`
	Script      string `json:"script"`
	Satoshis    int64  `json:"satoshis"`
	Height      int64  `json:"height"`
}

// SpentInfo is the result of getspentinfo.
type SpentInfo struct {
	Txid   string `json:"txid"`
	Index  int    `json:"index"`
	Height int64  `json:"height"`
}

// IdentityResult is the result of getidentity.
type IdentityResult struct {
	Identity    Identity `json:"identity"`
	Status      string   `json:"status"`
	CanSpendFor bool     `json:"canspendfor"`
	CanSignFor  bool     `json:"cansignfor"`
	BlockHeight int64    `json:"blockheight"`
	TxID        string   `json:"txid"`
	Vout        int      `json:"vout"`
}

// Identity is a Verus identity definition.
type Identity struct {
	Version             int             `json:"version"`
	Flags               int             `json:"flags"`
	PrimaryAddresses    []string        `json:"primaryaddresses"`
	MinimumSignatures   int             `json:"minimumsignatures"`
	Name                string          `json:"name"`
	IdentityAddress     string          `json:"identityaddress"`
	Parent              string          `json:"parent"`
	SystemID            string          `json:"systemid"`
	ContentMap          json.RawMessage `json:"contentmap,omitempty"`
	ContentMultiMap     json.RawMessage `json:"contentmultimap,omitempty"`
	RevocationAuthority string          `json:"revocationauthority"`
	RecoveryAuthority   string          `json:"recoveryauthority"`
	PrivateAddress      string          `json:"privateaddress,omitempty"`
	Timelock            int64           `json:"timelock"`
}

// VDXFID is the result of getvdxfid.
type VDXFID struct {
	VDXFID        string          `json:"vdxfid"`
	Hash160       string          `json:"hash160result"`
	QualifiedName json.RawMessage `json:"qualifiedname"`
}

// Currency is a currency definition as returned by getcurrency and inside
// listcurrencies entries.
type Currency struct {
	Version           int             `json:"version"`
	Name              string          `json:"name"`
	CurrencyID        string          `json:"currencyid"`
	Parent            string          `json:"parent"`
	SystemID          string          `json:"systemid"`
	Options           int             `json:"options"`
	Proofprotocol     int             `json:"proofprotocol"`
	StartBlock        int64           `json:"startblock"`
	EndBlock          int64           `json:"endblock"`
	Currencies        []string        `json:"currencies,omitempty"`
	Weights           []float64       `json:"weights,omitempty"`
	Conversions       []float64       `json:"conversions,omitempty"`
	InitialSupply     float64         `json:"initialsupply,omitempty"`
	BestHeight        int64           `json:"bestheight,omitempty"`
	BestCurrencyState json.RawMessage `json:"bestcurrencystate,omitempty"`
}

// CurrencyState is the state of a currency at a height.
type CurrencyState struct {
	FlagsInt             int             `json:"flags"`
	CurrencyID           string          `json:"currencyid"`
	ReserveCurrencies    json.RawMessage `json:"reservecurrencies,omitempty"`
	InitialSupply        float64         `json:"initialsupply"`
	Supply               float64         `json:"supply"`
	PrimaryCurrencyPrice float64         `json:"primarycurrencyprice,omitempty"`
}

// SendCurrencyOutput is one output of sendcurrency.
type SendCurrencyOutput struct {
	Currency  string  `json:"currency,omitempty"`
	Amount    float64 `json:"amount"`
	Address   string  `json:"address"`
	Convertto string  `json:"convertto,omitempty"`
	Via       string  `json:"via,omitempty"`
	ExportTo  string  `json:"exportto,omitempty"`
	RefundTo  string  `json:"refundto,omitempty"`
	Memo      string  `json:"memo,omitempty"`
	Burn      bool    `json:"burn,omitempty"`
	MintNew   bool    `json:"mintnew,omitempty"`
}

// addressQuery is the object form the address-index methods expect.
type addressQuery struct {
	Addresses []string `json:"addresses"`
}

// spentQuery is the object form getspentinfo expects.
type spentQuery struct {
	Txid  string `json:"txid"`
	Index int    `json:"index"`
}
