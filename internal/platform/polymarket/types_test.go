package polymarket

import (
	"encoding/json"
	"testing"
)

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"12.5"`, 12.5},
		{"malformed string", `"abc"`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexFloat
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if float64(f) != tt.want {
				t.Errorf("flexFloat(%s) = %v, want %v", tt.in, float64(f), tt.want)
			}
		})
	}
}

func TestFlexBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"TRUE"`, true},
		{`"1"`, true},
		{`"no"`, false},
	}

	for _, tt := range tests {
		var b flexBool
		if err := json.Unmarshal([]byte(tt.in), &b); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if bool(b) != tt.want {
			t.Errorf("flexBool(%s) = %v, want %v", tt.in, bool(b), tt.want)
		}
	}
}

func TestToDomainMarketDecodesEncodedArrays(t *testing.T) {
	m := APIMarket{
		ID:            "101",
		Question:      "Will it happen?",
		Outcomes:      `["Yes","No"]`,
		OutcomePrices: `["0.65","0.35"]`,
		LiquidityNum:  15000,
		ClobTokenIDs:  `["tok-yes","tok-no"]`,
	}

	dm := m.ToDomainMarket()
	if dm.Outcomes != [2]string{"Yes", "No"} {
		t.Errorf("outcomes = %v", dm.Outcomes)
	}
	if dm.OutcomePrices != [2]float64{0.65, 0.35} {
		t.Errorf("prices = %v", dm.OutcomePrices)
	}
	if dm.Liquidity != 15000 {
		t.Errorf("liquidity = %v", dm.Liquidity)
	}
	if len(dm.TokenIDs) != 2 || dm.TokenIDs[0] != "tok-yes" {
		t.Errorf("token IDs = %v", dm.TokenIDs)
	}
}

func TestToDomainMarketMalformedArraysDefault(t *testing.T) {
	m := APIMarket{
		ID:            "101",
		Outcomes:      `not json`,
		OutcomePrices: ``,
	}

	dm := m.ToDomainMarket()
	if dm.Outcomes != [2]string{"Yes", "No"} {
		t.Errorf("outcomes = %v, want Yes/No default", dm.Outcomes)
	}
	if dm.OutcomePrices != [2]float64{0, 0} {
		t.Errorf("prices = %v, want zeros", dm.OutcomePrices)
	}
}

func TestDecodeStringArrayMixedTypes(t *testing.T) {
	got := decodeStringArray(`["0.5", 0.25]`)
	if len(got) != 2 || got[0] != "0.5" || got[1] != "0.25" {
		t.Errorf("decodeStringArray mixed = %v", got)
	}
}

func TestBookOrderCounterparty(t *testing.T) {
	tests := []struct {
		name  string
		order APIBookOrder
		want  string
	}{
		{"maker address", APIBookOrder{MakerAddress: "0xabc"}, "0xabc"},
		{"owner fallback", APIBookOrder{Owner: "0xdef"}, "0xdef"},
		{"address fallback", APIBookOrder{Address: "0x123"}, "0x123"},
		{"none", APIBookOrder{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.Counterparty(); got != tt.want {
				t.Errorf("Counterparty() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBookOrderLevel(t *testing.T) {
	lvl := APIBookOrder{Price: "0.62", Size: "1500"}.Level()
	if lvl.Price != 0.62 || lvl.Size != 1500 {
		t.Errorf("Level() = %+v", lvl)
	}

	bad := APIBookOrder{Price: "x", Size: ""}.Level()
	if bad.Price != 0 || bad.Size != 0 {
		t.Errorf("malformed Level() = %+v, want zeros", bad)
	}
}
