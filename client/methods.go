package client

import (
	"context"
	"encoding/json"
)

// Chain and block queries.

// CoinSupply returns the coin supply breakdown at the current height.
func (c *Client) CoinSupply(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "coinsupply")
}

// GetBestBlockHash returns the hash of the chain tip.
func (c *Client) GetBestBlockHash(ctx context.Context) (string, error) {
	return CallInto[string](ctx, c, "getbestblockhash")
}

// GetBlockchainInfo returns chain state and sync progress.
func (c *Client) GetBlockchainInfo(ctx context.Context) (*BlockchainInfo, error) {
	return CallInto[*BlockchainInfo](ctx, c, "getblockchaininfo")
}

// GetBlockCount returns the height of the chain tip.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	return CallInto[int64](ctx, c, "getblockcount")
}

// GetBlock returns the decoded block for a hash.
func (c *Client) GetBlock(ctx context.Context, hash string) (*Block, error) {
	return CallInto[*Block](ctx, c, "getblock", hash, true)
}

// GetBlockRaw returns the serialized block for a hash as hex.
func (c *Client) GetBlockRaw(ctx context.Context, hash string) (string, error) {
	return CallInto[string](ctx, c, "getblock", hash, false)
}

// GetBlockHash returns the block hash at a height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	return CallInto[string](ctx, c, "getblockhash", height)
}

// GetBlockHashes returns hashes of blocks with timestamps in [low, high).
func (c *Client) GetBlockHashes(ctx context.Context, high, low int64) ([]string, error) {
	return CallInto[[]string](ctx, c, "getblockhashes", high, low)
}

// GetBlockHeader returns the decoded header for a block hash.
func (c *Client) GetBlockHeader(ctx context.Context, hash string) (*BlockHeader, error) {
	return CallInto[*BlockHeader](ctx, c, "getblockheader", hash)
}

// GetBlockSubsidy returns the block reward at a height.
func (c *Client) GetBlockSubsidy(ctx context.Context, height int64) (*BlockSubsidy, error) {
	return CallInto[*BlockSubsidy](ctx, c, "getblocksubsidy", height)
}

// GetBlockTemplate returns data needed to construct a block.
func (c *Client) GetBlockTemplate(ctx context.Context, request any) (json.RawMessage, error) {
	if request == nil {
		return c.Call(ctx, "getblocktemplate")
	}
	return c.Call(ctx, "getblocktemplate", request)
}

// GetChainTips returns all known chain tips, including orphaned branches.
func (c *Client) GetChainTips(ctx context.Context) ([]ChainTip, error) {
	return CallInto[[]ChainTip](ctx, c, "getchaintips")
}

// GetDifficulty returns the proof-of-work difficulty at the tip.
func (c *Client) GetDifficulty(ctx context.Context) (float64, error) {
	return CallInto[float64](ctx, c, "getdifficulty")
}

// GetInfo returns general node state.
func (c *Client) GetInfo(ctx context.Context) (*Info, error) {
	return CallInto[*Info](ctx, c, "getinfo")
}

// GetMempoolInfo returns mempool size and memory usage.
func (c *Client) GetMempoolInfo(ctx context.Context) (*MempoolInfo, error) {
	return CallInto[*MempoolInfo](ctx, c, "getmempoolinfo")
}

// GetMiningInfo returns mining and staking state.
func (c *Client) GetMiningInfo(ctx context.Context) (*MiningInfo, error) {
	return CallInto[*MiningInfo](ctx, c, "getmininginfo")
}

// GetNetworkInfo returns p2p network state.
func (c *Client) GetNetworkInfo(ctx context.Context) (*NetworkInfo, error) {
	return CallInto[*NetworkInfo](ctx, c, "getnetworkinfo")
}

// GetRawMempool returns the txids currently in the mempool.
func (c *Client) GetRawMempool(ctx context.Context) ([]string, error) {
	return CallInto[[]string](ctx, c, "getrawmempool")
}

// GetSaplingTree returns the sapling note commitment tree at a height.
func (c *Client) GetSaplingTree(ctx context.Context, height int64) (json.RawMessage, error) {
	return c.Call(ctx, "getsaplingtree", height)
}

// GetTxOut returns an unspent output, or nil when it is spent or unknown.
func (c *Client) GetTxOut(ctx context.Context, txid string, n int, includeMempool bool) (*TxOut, error) {
	return CallInto[*TxOut](ctx, c, "gettxout", txid, n, includeMempool)
}

// GetTxOutSetInfo returns statistics over the whole UTXO set.
func (c *Client) GetTxOutSetInfo(ctx context.Context) (*TxOutSetInfo, error) {
	return CallInto[*TxOutSetInfo](ctx, c, "gettxoutsetinfo")
}

// Help returns the node's help text.
func (c *Client) Help(ctx context.Context) (string, error) {
	return CallInto[string](ctx, c, "help")
}

// Address index queries. The daemon expects the address list wrapped in an
// object; these wrap it so callers pass plain slices.

// GetAddressBalance returns the confirmed balance of a set of addresses.
func (c *Client) GetAddressBalance(ctx context.Context, addresses []string) (*AddressBalance, error) {
	return CallInto[*AddressBalance](ctx, c, "getaddressbalance", addressQuery{Addresses: addresses})
}

// GetAddressDeltas returns all balance changes for a set of addresses.
func (c *Client) GetAddressDeltas(ctx context.Context, addresses []string) ([]AddressDelta, error) {
	return CallInto[[]AddressDelta](ctx, c, "getaddressdeltas", addressQuery{Addresses: addresses})
}

// GetAddressMempool returns unconfirmed balance changes for a set of addresses.
func (c *Client) GetAddressMempool(ctx context.Context, addresses []string) ([]AddressDelta, error) {
	return CallInto[[]AddressDelta](ctx, c, "getaddressmempool", addressQuery{Addresses: addresses})
}

// GetAddressTxIDs returns the txids touching a set of addresses.
func (c *Client) GetAddressTxIDs(ctx context.Context, addresses []string) ([]string, error) {
	return CallInto[[]string](ctx, c, "getaddresstxids", addressQuery{Addresses: addresses})
}

// GetAddressUTXOs returns the unspent outputs held by a set of addresses.
func (c *Client) GetAddressUTXOs(ctx context.Context, addresses []string) ([]AddressUTXO, error) {
	return CallInto[[]AddressUTXO](ctx, c, "getaddressutxos", addressQuery{Addresses: addresses})
}

// GetSpentInfo returns where an output was spent.
func (c *Client) GetSpentInfo(ctx context.Context, txid string, index int) (*SpentInfo, error) {
	return CallInto[*SpentInfo](ctx, c, "getspentinfo", spentQuery{Txid: txid, Index: index})
}

// Raw transactions and fees.

// CreateMultisig creates a multisig address requiring nRequired of the keys.
func (c *Client) CreateMultisig(ctx context.Context, nRequired int, keys []string) (*MultisigResult, error) {
	return CallInto[*MultisigResult](ctx, c, "createmultisig", nRequired, keys)
}

// CreateRawTransaction builds an unsigned transaction spending the given
// inputs. Outputs map addresses to amounts.
func (c *Client) CreateRawTransaction(ctx context.Context, inputs []TxInput, outputs map[string]float64) (string, error) {
	return CallInto[string](ctx, c, "createrawtransaction", inputs, outputs)
}

// DecodeRawTransaction decodes a serialized transaction.
func (c *Client) DecodeRawTransaction(ctx context.Context, hexTx string) (*RawTransaction, error) {
	return CallInto[*RawTransaction](ctx, c, "decoderawtransaction", hexTx)
}

// DecodeScript decodes a serialized script.
func (c *Client) DecodeScript(ctx context.Context, hexScript string) (json.RawMessage, error) {
	return c.Call(ctx, "decodescript", hexScript)
}

// EstimateFee estimates the fee per kilobyte for confirmation within nBlocks.
func (c *Client) EstimateFee(ctx context.Context, nBlocks int) (float64, error) {
	return CallInto[float64](ctx, c, "estimatefee", nBlocks)
}

// EstimatePriority estimates the priority needed for confirmation within
// nBlocks.
func (c *Client) EstimatePriority(ctx context.Context, nBlocks int) (float64, error) {
	return CallInto[float64](ctx, c, "estimatepriority", nBlocks)
}

// FundRawTransaction selects inputs from the given UTXOs to fund an unsigned
// transaction. All four arguments are mandatory on the wire.
func (c *Client) FundRawTransaction(ctx context.Context, hexTx string, utxos []AddressUTXO, changeAddress string, explicitFee float64) (json.RawMessage, error) {
	return c.Call(ctx, "fundrawtransaction", hexTx, utxos, changeAddress, explicitFee)
}

// GetRawTransaction returns the decoded transaction for a txid.
func (c *Client) GetRawTransaction(ctx context.Context, txid string) (*RawTransaction, error) {
	return CallInto[*RawTransaction](ctx, c, "getrawtransaction", txid, 1)
}

// GetRawTransactionHex returns the serialized transaction for a txid.
func (c *Client) GetRawTransactionHex(ctx context.Context, txid string) (string, error) {
	return CallInto[string](ctx, c, "getrawtransaction", txid, 0)
}

// SendRawTransaction broadcasts a signed transaction and returns its txid.
func (c *Client) SendRawTransaction(ctx context.Context, hexTx string) (string, error) {
	return CallInto[string](ctx, c, "sendrawtransaction", hexTx)
}

// ConvertPassphrase converts an agama passphrase to its wallet seed forms.
func (c *Client) ConvertPassphrase(ctx context.Context, passphrase string) (json.RawMessage, error) {
	return c.Call(ctx, "convertpassphrase", passphrase)
}

// Identity queries.

// GetIdentity returns an identity by name or i-address.
func (c *Client) GetIdentity(ctx context.Context, name string) (*IdentityResult, error) {
	return CallInto[*IdentityResult](ctx, c, "getidentity", name)
}

// GetIdentityAt returns an identity as of a block height.
func (c *Client) GetIdentityAt(ctx context.Context, name string, height int64) (*IdentityResult, error) {
	return CallInto[*IdentityResult](ctx, c, "getidentity", name, height)
}

// GetIdentitiesWithAddress returns identities whose primary addresses include
// the queried address.
func (c *Client) GetIdentitiesWithAddress(ctx context.Context, query any) ([]Identity, error) {
	return CallInto[[]Identity](ctx, c, "getidentitieswithaddress", query)
}

// GetIdentitiesWithRecovery returns identities with the queried recovery
// authority.
func (c *Client) GetIdentitiesWithRecovery(ctx context.Context, query any) ([]Identity, error) {
	return CallInto[[]Identity](ctx, c, "getidentitieswithrecovery", query)
}

// GetIdentitiesWithRevocation returns identities with the queried revocation
// authority.
func (c *Client) GetIdentitiesWithRevocation(ctx context.Context, query any) ([]Identity, error) {
	return CallInto[[]Identity](ctx, c, "getidentitieswithrevocation", query)
}

// GetIdentityTrust returns the wallet's trust ratings for identities.
func (c *Client) GetIdentityTrust(ctx context.Context, identityIDs []string) (json.RawMessage, error) {
	if identityIDs == nil {
		return c.Call(ctx, "getidentitytrust")
	}
	return c.Call(ctx, "getidentitytrust", identityIDs)
}

// GetVDXFID returns the VDXF id for a URI.
func (c *Client) GetVDXFID(ctx context.Context, uri string) (*VDXFID, error) {
	return CallInto[*VDXFID](ctx, c, "getvdxfid", uri)
}

// HashData hashes a hex message with the default identity hash.
func (c *Client) HashData(ctx context.Context, hexMessage string) (string, error) {
	return CallInto[string](ctx, c, "hashdata", hexMessage)
}

// VerifyHash checks a signature over a prehashed message.
func (c *Client) VerifyHash(ctx context.Context, address, signature, hexHash string) (bool, error) {
	return CallInto[bool](ctx, c, "verifyhash", address, signature, hexHash)
}

// VerifyMessage checks an identity or address signature over a message.
func (c *Client) VerifyMessage(ctx context.Context, address, signature, message string) (bool, error) {
	return CallInto[bool](ctx, c, "verifymessage", address, signature, message)
}

// VerifySignature checks a signature described by a query object.
func (c *Client) VerifySignature(ctx context.Context, query any) (json.RawMessage, error) {
	return c.Call(ctx, "verifysignature", query)
}

// Identity mutations. These run in return-transaction mode only: the node
// builds and returns the unsigned transaction instead of funding and
// broadcasting it, so the caller's wallet never moves funds through this
// surface. The consent flag is pinned to true here and enforced again by the
// registry.

// RecoverIdentity builds a recovery transaction for an identity.
func (c *Client) RecoverIdentity(ctx context.Context, identity any) (string, error) {
	return CallInto[string](ctx, c, "recoveridentity", identity, true)
}

// RegisterIdentity builds a registration transaction from a name commitment.
func (c *Client) RegisterIdentity(ctx context.Context, registration any) (string, error) {
	return CallInto[string](ctx, c, "registeridentity", registration, true)
}

// RevokeIdentity builds a revocation transaction for an identity.
func (c *Client) RevokeIdentity(ctx context.Context, name string) (string, error) {
	return CallInto[string](ctx, c, "revokeidentity", name, true)
}

// UpdateIdentity builds an update transaction for an identity.
func (c *Client) UpdateIdentity(ctx context.Context, identity any) (string, error) {
	return CallInto[string](ctx, c, "updateidentity", identity, true)
}

// SetIdentityTimelock builds a timelock transaction for an identity.
func (c *Client) SetIdentityTimelock(ctx context.Context, name string, timelock any) (string, error) {
	return CallInto[string](ctx, c, "setidentitytimelock", name, timelock, true)
}

// Currency queries and conversions.

// EstimateConversion estimates the result of a currency conversion.
func (c *Client) EstimateConversion(ctx context.Context, conversion any) (json.RawMessage, error) {
	return c.Call(ctx, "estimateconversion", conversion)
}

// GetCurrency returns a currency definition by name or id.
func (c *Client) GetCurrency(ctx context.Context, name string) (*Currency, error) {
	return CallInto[*Currency](ctx, c, "getcurrency", name)
}

// GetCurrencyConverters returns currencies that can convert the given
// currency.
func (c *Client) GetCurrencyConverters(ctx context.Context, currency string) (json.RawMessage, error) {
	return c.Call(ctx, "getcurrencyconverters", currency)
}

// GetCurrencyState returns the state of a currency at the current height.
func (c *Client) GetCurrencyState(ctx context.Context, name string) ([]CurrencyState, error) {
	return CallInto[[]CurrencyState](ctx, c, "getcurrencystate", name)
}

// GetCurrencyTrust returns the wallet's trust ratings for currencies.
func (c *Client) GetCurrencyTrust(ctx context.Context, currencyIDs []string) (json.RawMessage, error) {
	if currencyIDs == nil {
		return c.Call(ctx, "getcurrencytrust")
	}
	return c.Call(ctx, "getcurrencytrust", currencyIDs)
}

// GetInitialCurrencyState returns the launch state of a currency.
func (c *Client) GetInitialCurrencyState(ctx context.Context, name string) ([]CurrencyState, error) {
	return CallInto[[]CurrencyState](ctx, c, "getinitialcurrencystate", name)
}

// GetLaunchInfo returns launch parameters and notarization for a currency.
func (c *Client) GetLaunchInfo(ctx context.Context, name string) (json.RawMessage, error) {
	return c.Call(ctx, "getlaunchinfo", name)
}

// GetOffers returns open marketplace offers on a currency or identity.
func (c *Client) GetOffers(ctx context.Context, currencyOrID string, isIdentity bool) (json.RawMessage, error) {
	return c.Call(ctx, "getoffers", currencyOrID, isIdentity)
}

// GetReserveDeposits returns reserve deposits held for a currency.
func (c *Client) GetReserveDeposits(ctx context.Context, name string) (json.RawMessage, error) {
	return c.Call(ctx, "getreservedeposits", name)
}

// ListCurrencies returns currency definitions matching a query.
func (c *Client) ListCurrencies(ctx context.Context, query any) ([]Currency, error) {
	if query == nil {
		return CallInto[[]Currency](ctx, c, "listcurrencies")
	}
	return CallInto[[]Currency](ctx, c, "listcurrencies", query)
}

// SendCurrency builds a transaction sending or converting currency. It runs
// in return-transaction mode only: the result is an unsigned transaction
// template, never a broadcast. All positional params are filled so the
// consent flag lands in its fixed slot.
func (c *Client) SendCurrency(ctx context.Context, fromAddress string, outputs []SendCurrencyOutput, minConf int, feeAmount float64) (json.RawMessage, error) {
	return c.Call(ctx, "sendcurrency", fromAddress, outputs, minConf, feeAmount, true)
}

// Cross-chain exports, imports and notarization.

// GetBestProofRoot selects the best of the offered proof roots.
func (c *Client) GetBestProofRoot(ctx context.Context, proofRoots any) (json.RawMessage, error) {
	return c.Call(ctx, "getbestproofroot", proofRoots)
}

// GetExports returns exports from this chain to another.
func (c *Client) GetExports(ctx context.Context, chainName string, heightStart, heightEnd int64) (json.RawMessage, error) {
	return c.Call(ctx, "getexports", chainName, heightStart, heightEnd)
}

// GetImports returns imports into this chain from another.
func (c *Client) GetImports(ctx context.Context, chainName string, heightStart, heightEnd int64) (json.RawMessage, error) {
	return c.Call(ctx, "getimports", chainName, heightStart, heightEnd)
}

// GetLastImportFrom returns the last import from a chain.
func (c *Client) GetLastImportFrom(ctx context.Context, chainName string) (json.RawMessage, error) {
	return c.Call(ctx, "getlastimportfrom", chainName)
}

// GetNotarizationData returns the notarization chain for a currency.
func (c *Client) GetNotarizationData(ctx context.Context, name string) (json.RawMessage, error) {
	return c.Call(ctx, "getnotarizationdata", name)
}

// GetPendingTransfers returns transfers awaiting export to a chain.
func (c *Client) GetPendingTransfers(ctx context.Context, chainName string) (json.RawMessage, error) {
	return c.Call(ctx, "getpendingtransfers", chainName)
}

// SubmitAcceptedNotarization submits an earned notarization with evidence.
func (c *Client) SubmitAcceptedNotarization(ctx context.Context, earnedNotarization, notaryEvidence any) (json.RawMessage, error) {
	return c.Call(ctx, "submitacceptednotarization", earnedNotarization, notaryEvidence)
}

// SubmitImports submits a described import transaction.
func (c *Client) SubmitImports(ctx context.Context, importDescriptor any) (json.RawMessage, error) {
	return c.Call(ctx, "submitimports", importDescriptor)
}
