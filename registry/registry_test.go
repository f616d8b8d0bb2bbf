package registry

import (
	"encoding/json"
	"errors"
	"testing"
)

func raw(vals ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(vals))
	for i, v := range vals {
		out[i] = json.RawMessage(v)
	}
	return out
}

func TestLookup(t *testing.T) {
	t.Run("finds a registered method", func(t *testing.T) {
		d, err := Lookup("getblockcount")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Name != "getblockcount" {
			t.Errorf("name = %q", d.Name)
		}
		if len(d.Params) != 0 {
			t.Errorf("expected no params, got %d", len(d.Params))
		}
	})

	t.Run("rejects an unknown method", func(t *testing.T) {
		_, err := Lookup("dumpprivkey")
		var ue *UnknownMethodError
		if !errors.As(err, &ue) {
			t.Fatalf("expected *UnknownMethodError, got %v", err)
		}
		if ue.Method != "dumpprivkey" {
			t.Errorf("method = %q", ue.Method)
		}
	})
}

func TestMethods(t *testing.T) {
	names := Methods()
	if len(names) != len(methods) {
		t.Fatalf("got %d names, want %d", len(names), len(methods))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		method string
		params []json.RawMessage
		wantOK bool
	}{
		{"no params where none expected", "getblockcount", nil, true},
		{"params where none expected", "getblockcount", raw(`1`), false},
		{"getblock with hash", "getblock", raw(`"0000abc"`), true},
		{"getblock with hash and verbose", "getblock", raw(`"0000abc"`, `true`), true},
		{"getblock missing required hash", "getblock", nil, false},
		{"getblock numeric hash rejected", "getblock", raw(`100`), false},
		{"getblockhash integer index", "getblockhash", raw(`250`), true},
		{"getblockhash fractional index rejected", "getblockhash", raw(`250.5`), false},
		{"getblockhash exponent index rejected", "getblockhash", raw(`2e3`), false},
		{"getaddressbalance object", "getaddressbalance", raw(`{"addresses":["R..."]}`), true},
		{"getaddressbalance array rejected", "getaddressbalance", raw(`["R..."]`), false},
		{"estimatefee float fee rejected", "estimatefee", raw(`0.1`), false},
		{"fundrawtransaction full arity", "fundrawtransaction",
			raw(`"00ab"`, `[]`, `"Rchange"`, `0.0001`), true},
		{"fundrawtransaction integer fee accepted", "fundrawtransaction",
			raw(`"00ab"`, `[]`, `"Rchange"`, `1`), true},
		{"fundrawtransaction short arity rejected", "fundrawtransaction",
			raw(`"00ab"`, `[]`, `"Rchange"`), false},
		{"sendcurrency in template mode", "sendcurrency",
			raw(`"RFrom"`, `[{"address":"RTo","amount":1}]`, `1`, `0.0001`, `true`), true},
		{"sendcurrency without template flag rejected", "sendcurrency",
			raw(`"RFrom"`, `[{"address":"RTo","amount":1}]`, `1`, `0.0001`, `false`), false},
		{"sendcurrency with flag omitted rejected", "sendcurrency",
			raw(`"RFrom"`, `[{"address":"RTo","amount":1}]`), false},
		{"updateidentity in returntx mode", "updateidentity",
			raw(`{"name":"me@"}`, `true`), true},
		{"updateidentity without returntx rejected", "updateidentity",
			raw(`{"name":"me@"}`, `false`), false},
		{"setidentitytimelock consent at index 2", "setidentitytimelock",
			raw(`"me@"`, `{"unlockatblock":100}`, `true`), true},
		{"setidentitytimelock consent false rejected", "setidentitytimelock",
			raw(`"me@"`, `{"unlockatblock":100}`, `false`), false},
		{"verifymessage optional tail omitted", "verifymessage",
			raw(`"RAddr"`, `"sig"`, `"hello"`), true},
		{"invalid JSON param rejected", "getblock", raw(`"unterminated`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.method)
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			err = d.Validate(tt.params)
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.wantOK {
				var pe *ParamError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParamError, got %v", err)
				}
			}
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	d, err := Lookup("getidentity")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	params := raw(`"me@"`, `100`)

	first := d.Validate(params)
	second := d.Validate(params)

	if (first == nil) != (second == nil) {
		t.Fatalf("outcomes differ: %v vs %v", first, second)
	}
	if first != nil && first.Error() != second.Error() {
		t.Fatalf("messages differ: %q vs %q", first, second)
	}
}
