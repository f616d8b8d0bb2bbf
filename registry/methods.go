package registry

// Shorthand constructors keep the table readable.
func req(name string, kind Kind) Param {
	return Param{Name: name, Kind: kind, Required: true}
}

func opt(name string, kind Kind) Param {
	return Param{Name: name, Kind: kind}
}

// methods is the fixed table of supported verusd RPC methods. Schemas follow
// the daemon's positional signatures; params may be omitted from the tail
// unless marked required.
var methods = map[string]Descriptor{
	// Chain and block queries.
	"coinsupply":         {Name: "coinsupply"},
	"getbestblockhash":   {Name: "getbestblockhash"},
	"getblockchaininfo":  {Name: "getblockchaininfo"},
	"getblockcount":      {Name: "getblockcount"},
	"getchaintips":       {Name: "getchaintips"},
	"getdifficulty":      {Name: "getdifficulty"},
	"getinfo":            {Name: "getinfo"},
	"getmempoolinfo":     {Name: "getmempoolinfo"},
	"getmininginfo":      {Name: "getmininginfo"},
	"getnetworkinfo":     {Name: "getnetworkinfo"},
	"getrawmempool":      {Name: "getrawmempool"},
	"gettxoutsetinfo":    {Name: "gettxoutsetinfo"},
	"help":               {Name: "help"},
	"getblock": {Name: "getblock", Params: []Param{
		req("hash", KindString), opt("verbose", KindBool)}},
	"getblockhash": {Name: "getblockhash", Params: []Param{
		req("index", KindInt)}},
	"getblockhashes": {Name: "getblockhashes", Params: []Param{
		req("high", KindInt), req("low", KindInt)}},
	"getblockheader": {Name: "getblockheader", Params: []Param{
		req("hash", KindString)}},
	"getblocksubsidy": {Name: "getblocksubsidy", Params: []Param{
		opt("height", KindInt)}},
	"getblocktemplate": {Name: "getblocktemplate", Params: []Param{
		opt("jsonrequestobject", KindObject)}},
	"getsaplingtree": {Name: "getsaplingtree", Params: []Param{
		opt("height", KindInt)}},
	"gettxout": {Name: "gettxout", Params: []Param{
		req("txid", KindString), req("n", KindInt), opt("includemempool", KindBool)}},

	// Address index queries.
	"getaddressbalance": {Name: "getaddressbalance", Params: []Param{
		req("addresses", KindObject)}},
	"getaddressdeltas": {Name: "getaddressdeltas", Params: []Param{
		req("addresses", KindObject)}},
	"getaddressmempool": {Name: "getaddressmempool", Params: []Param{
		req("addresses", KindObject)}},
	"getaddresstxids": {Name: "getaddresstxids", Params: []Param{
		req("addresses", KindObject)}},
	"getaddressutxos": {Name: "getaddressutxos", Params: []Param{
		req("addresses", KindObject)}},
	"getspentinfo": {Name: "getspentinfo", Params: []Param{
		req("query", KindObject)}},

	// Raw transactions and fees.
	"createmultisig": {Name: "createmultisig", Params: []Param{
		req("nrequired", KindInt), req("keys", KindArray)}},
	"createrawtransaction": {Name: "createrawtransaction", Params: []Param{
		req("inputs", KindArray), req("outputs", KindObject),
		opt("locktime", KindInt), opt("expiryheight", KindInt)}},
	"decoderawtransaction": {Name: "decoderawtransaction", Params: []Param{
		req("hexstring", KindString), opt("iswitness", KindBool)}},
	"decodescript": {Name: "decodescript", Params: []Param{
		req("hexstring", KindString), opt("iswitness", KindBool)}},
	"estimatefee": {Name: "estimatefee", Params: []Param{
		req("nblocks", KindInt)}},
	"estimatepriority": {Name: "estimatepriority", Params: []Param{
		req("nblocks", KindInt)}},
	"fundrawtransaction": {Name: "fundrawtransaction", ExactArity: true, Params: []Param{
		req("hexstring", KindString), req("utxos", KindArray),
		req("changeaddress", KindString), req("explicitfee", KindFloat)}},
	"getrawtransaction": {Name: "getrawtransaction", Params: []Param{
		req("txid", KindString), opt("verbose", KindInt)}},
	"sendrawtransaction": {Name: "sendrawtransaction", Params: []Param{
		req("hexstring", KindString)}},
	"convertpassphrase": {Name: "convertpassphrase", Params: []Param{
		req("passphrase", KindString)}},

	// Identity queries.
	"getidentity": {Name: "getidentity", Params: []Param{
		req("name", KindString), opt("height", KindInt),
		opt("txproof", KindBool), opt("txproofheight", KindInt)}},
	"getidentitieswithaddress": {Name: "getidentitieswithaddress", Params: []Param{
		req("query", KindObject)}},
	"getidentitieswithrecovery": {Name: "getidentitieswithrecovery", Params: []Param{
		req("query", KindObject)}},
	"getidentitieswithrevocation": {Name: "getidentitieswithrevocation", Params: []Param{
		req("query", KindObject)}},
	"getidentitytrust": {Name: "getidentitytrust", Params: []Param{
		opt("identityids", KindArray)}},
	"getvdxfid": {Name: "getvdxfid", Params: []Param{
		req("vdxfuri", KindString), opt("initialdata", KindObject)}},
	"hashdata": {Name: "hashdata", Params: []Param{
		req("hexmessage", KindString), opt("hashtype", KindString), opt("key", KindString)}},
	"verifyhash": {Name: "verifyhash", Params: []Param{
		req("address", KindString), req("signature", KindString),
		req("hexhash", KindString), opt("checklatest", KindBool)}},
	"verifymessage": {Name: "verifymessage", Params: []Param{
		req("address", KindString), req("signature", KindString),
		req("message", KindString), opt("checklatest", KindBool)}},
	"verifysignature": {Name: "verifysignature", Params: []Param{
		req("query", KindObject)}},

	// Identity mutations, return-transaction mode only.
	"recoveridentity": {Name: "recoveridentity", RequireTrue: 1, Params: []Param{
		req("identity", KindObject), req("returntx", KindBool),
		opt("tokenrecover", KindBool), opt("feeoffer", KindFloat),
		opt("sourceoffunds", KindString)}},
	"registeridentity": {Name: "registeridentity", RequireTrue: 1, Params: []Param{
		req("registration", KindObject), req("returntx", KindBool),
		opt("feeoffer", KindFloat), opt("sourceoffunds", KindString)}},
	"revokeidentity": {Name: "revokeidentity", RequireTrue: 1, Params: []Param{
		req("name", KindString), req("returntx", KindBool),
		opt("tokenrevoke", KindBool), opt("feeoffer", KindFloat),
		opt("sourceoffunds", KindString)}},
	"updateidentity": {Name: "updateidentity", RequireTrue: 1, Params: []Param{
		req("identity", KindObject), req("returntx", KindBool),
		opt("tokenupdate", KindBool), opt("feeoffer", KindFloat),
		opt("sourceoffunds", KindString)}},
	"setidentitytimelock": {Name: "setidentitytimelock", RequireTrue: 2, Params: []Param{
		req("name", KindString), req("timelock", KindObject), req("returntx", KindBool),
		opt("feeoffer", KindFloat), opt("sourceoffunds", KindString)}},

	// Currency queries and conversions.
	"estimateconversion": {Name: "estimateconversion", Params: []Param{
		req("conversion", KindObject)}},
	"getcurrency": {Name: "getcurrency", Params: []Param{
		opt("currencyname", KindString)}},
	"getcurrencyconverters": {Name: "getcurrencyconverters", Params: []Param{
		req("currency", KindString), opt("currency2", KindString), opt("currency3", KindString)}},
	"getcurrencystate": {Name: "getcurrencystate", Params: []Param{
		opt("currencyname", KindString)}},
	"getcurrencytrust": {Name: "getcurrencytrust", Params: []Param{
		opt("currencyids", KindArray)}},
	"getinitialcurrencystate": {Name: "getinitialcurrencystate", Params: []Param{
		req("currencyname", KindString)}},
	"getlaunchinfo": {Name: "getlaunchinfo", Params: []Param{
		req("currencyname", KindString)}},
	"getoffers": {Name: "getoffers", Params: []Param{
		req("currencyorid", KindString), opt("isidentity", KindBool), opt("withtx", KindBool)}},
	"getreservedeposits": {Name: "getreservedeposits", Params: []Param{
		req("currencyname", KindString)}},
	"listcurrencies": {Name: "listcurrencies", Params: []Param{
		opt("query", KindObject), opt("startblock", KindInt), opt("endblock", KindInt)}},
	"sendcurrency": {Name: "sendcurrency", RequireTrue: 4, Params: []Param{
		req("fromaddress", KindString), req("outputs", KindArray),
		opt("minconf", KindInt), opt("feeamount", KindFloat),
		req("returntxtemplate", KindBool)}},

	// Cross-chain exports, imports and notarization.
	"getbestproofroot": {Name: "getbestproofroot", Params: []Param{
		req("proofroots", KindObject)}},
	"getexports": {Name: "getexports", Params: []Param{
		req("chainname", KindString), opt("heightstart", KindInt), opt("heightend", KindInt)}},
	"getimports": {Name: "getimports", Params: []Param{
		req("chainname", KindString), opt("heightstart", KindInt), opt("heightend", KindInt)}},
	"getlastimportfrom": {Name: "getlastimportfrom", Params: []Param{
		req("chainname", KindString)}},
	"getnotarizationdata": {Name: "getnotarizationdata", Params: []Param{
		req("currencyname", KindString)}},
	"getpendingtransfers": {Name: "getpendingtransfers", Params: []Param{
		req("chainname", KindString)}},
	"submitacceptednotarization": {Name: "submitacceptednotarization", Params: []Param{
		req("earnednotarization", KindObject), req("notaryevidence", KindObject)}},
	"submitimports": {Name: "submitimports", Params: []Param{
		req("importdescriptor", KindObject)}},
}
