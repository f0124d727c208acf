package override

import (
	"testing"
)

func TestParseField(t *testing.T) {
	cases := []struct {
		raw  string
		want Kind
	}{
		{"", Unset},
		{"   ", Unset},
		{"auto", Auto},
		{"Yes", Auto},
		{"no", Suppressed},
		{"NONE", Suppressed},
		{"skip", Suppressed},
		{"3", Explicit},
		{"-2", Explicit},
		{"2.5", Explicit},
		{"perm-650", Explicit},
	}
	for _, tc := range cases {
		if got := ParseField(tc.raw); got.Kind != tc.want {
			t.Errorf("ParseField(%q).Kind = %s, want %s", tc.raw, got.Kind, tc.want)
		}
	}
}

func TestZeroIsExplicitNotUnset(t *testing.T) {
	zero := ParseField("0")
	if zero.Kind != Explicit || !zero.HasNum || zero.Num != 0 {
		t.Fatalf("ParseField(\"0\") = %+v, want explicit numeric zero", zero)
	}
	empty := ParseField("")
	if empty.Kind != Unset {
		t.Fatalf("ParseField(\"\") = %+v, want unset", empty)
	}

	// Zero short-circuits the hierarchy; empty falls through it.
	if res := ResolveNumber(zero, 4, 6, 2); res.State != StateValue || res.Value != 0 {
		t.Errorf("explicit zero resolved to %+v, want value 0", res)
	}
	if res := ResolveNumber(empty, 4, 6, 2); res.State != StateValue || res.Value != 4 {
		t.Errorf("unset resolved to %+v, want category default 4", res)
	}
}

func TestResolveStringPrecedence(t *testing.T) {
	cases := []struct {
		name      string
		v         Value
		catDef    string
		custPref  string
		sysDef    string
		wantState State
		wantValue string
	}{
		{"explicit wins over everything", ParseField("perm-650"), "cat", "cust", "sys", StateValue, "perm-650"},
		{"auto forces computed over preference", ParseField("auto"), "cat", "cust", "sys", StateComputed, ""},
		{"suppressed is terminal", ParseField("none"), "cat", "cust", "sys", StateOff, ""},
		{"unset falls to category default", ParseField(""), "cat", "cust", "sys", StateValue, "cat"},
		{"then to customer preference", ParseField(""), "", "cust", "sys", StateValue, "cust"},
		{"then to system default", ParseField(""), "", "", "sys", StateValue, "sys"},
		{"all empty means computed", ParseField(""), "", "", "", StateComputed, ""},
		{"customer preference of none turns feature off", ParseField(""), "", "none", "sys", StateOff, ""},
	}
	for _, tc := range cases {
		got := ResolveString(tc.v, tc.catDef, tc.custPref, tc.sysDef)
		if got.State != tc.wantState || got.Value != tc.wantValue {
			t.Errorf("%s: got %+v, want state %v value %q", tc.name, got, tc.wantState, tc.wantValue)
		}
	}
}

func TestResolveNumberNegativeFallbacksSkip(t *testing.T) {
	res := ResolveNumber(Value{Kind: Unset}, -1, 7, -1)
	if res.State != StateValue || res.Value != 7 {
		t.Errorf("got %+v, want customer preference 7", res)
	}
}
