package ontology

import (
	"testing"
	"time"
)

func TestTimestamp_ScenarioSixInjectionStatus(t *testing.T) {
	// §8 scenario 6: injection status parse.
	const input = `{"lastInjectionDate":"2014-11-28T12:00:09Z"}`
	status, err := Decode[InjectionStatus]([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.LastInjectionDate == nil {
		t.Fatal("lastInjectionDate is nil")
	}
	want := time.Date(2014, 11, 28, 12, 0, 9, 0, time.UTC)
	if !status.LastInjectionDate.Time.Equal(want) {
		t.Errorf("got %v, want %v", status.LastInjectionDate.Time, want)
	}

	b, err := Encode(status)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != input {
		t.Errorf("re-encode = %s, want %s", b, input)
	}
}

func TestTimestamp_NormalizesOffsetToUTC(t *testing.T) {
	got, err := Decode[Timestamp]([]byte(`"2014-11-28T14:00:09+02:00"`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2014, 11, 28, 12, 0, 9, 0, time.UTC)
	if !got.Time.Equal(want) {
		t.Errorf("got %v, want %v", got.Time, want)
	}
	b, err := Encode(got)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `"2014-11-28T12:00:09Z"` {
		t.Errorf("got %s", b)
	}
}

func TestTimestamp_MalformedIsRejected(t *testing.T) {
	_, err := Decode[Timestamp]([]byte(`"not-a-date"`))
	if err == nil {
		t.Fatal("expected error for malformed timestamp")
	}
}

func TestVersion_String(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3}
	if v.String() != "1.2.3" {
		t.Errorf("got %s, want 1.2.3", v.String())
	}
}
