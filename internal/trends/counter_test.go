package trends

import (
	"reflect"
	"testing"
)

func TestCounterMostCommonOrdering(t *testing.T) {
	c := NewCounter()
	c.AddAll([]string{"phishing", "malware", "phishing", "ransomware", "malware", "malware"})

	got := c.MostCommon(0)
	want := CountList{
		{Key: "malware", Count: 3},
		{Key: "phishing", Count: 2},
		{Key: "ransomware", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MostCommon mismatch: got %v, want %v", got, want)
	}
}

func TestCounterTieBrokenByInsertionOrder(t *testing.T) {
	c := NewCounter()
	c.AddAll([]string{"beta", "alpha", "beta", "alpha", "gamma", "gamma"})

	got := c.MostCommon(0)
	want := CountList{
		{Key: "beta", Count: 2},
		{Key: "alpha", Count: 2},
		{Key: "gamma", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("equal counts must keep first-encountered order: got %v, want %v", got, want)
	}
}

func TestCounterMostCommonLimit(t *testing.T) {
	c := NewCounter()
	c.AddAll([]string{"a", "b", "b", "c", "c", "c"})

	got := c.MostCommon(2)
	want := CountList{
		{Key: "c", Count: 3},
		{Key: "b", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MostCommon(2) mismatch: got %v, want %v", got, want)
	}
}

func TestCounterEmpty(t *testing.T) {
	c := NewCounter()
	if got := c.MostCommon(5); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if c.Len() != 0 {
		t.Fatalf("expected zero length")
	}
}

func TestCountListJSONRoundTrip(t *testing.T) {
	original := CountList{
		{Key: "malware", Count: 3},
		{Key: "phishing", Count: 3},
		{Key: "apt", Count: 1},
	}

	data, err := original.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `{"malware":3,"phishing":3,"apt":1}` {
		t.Fatalf("unexpected JSON: %s", data)
	}

	var decoded CountList
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("round trip mismatch: got %v, want %v", decoded, original)
	}
}

func TestCountListUnmarshalRejectsNonObject(t *testing.T) {
	var cl CountList
	if err := cl.UnmarshalJSON([]byte(`[1, 2]`)); err == nil {
		t.Fatalf("expected error for non-object input")
	}
}
