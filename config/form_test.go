package config

import "testing"

func TestApplyFields_ParsesAndKeepsInvalid(t *testing.T) {
	base := *DefaultConfig()
	got, err := ApplyFields(base, map[string]string{
		FieldSeed:           "7",
		FieldBlobSamples:    "80",
		FieldBlobStd:        "oops",
		FieldRingKernel:     " RBF ",
		FieldRingC:          "10",
		FieldGamma:          "2.5",
		FieldShowCandidates: "yes",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Seed != 7 || got.BlobSamples != 80 || got.RingKernel != "rbf" || got.RingC != 10 || got.Gamma != 2.5 || !got.ShowCandidates {
		t.Fatalf("fields not applied: %+v", got)
	}
	if got.BlobStd != base.BlobStd {
		t.Fatalf("unparseable field should keep previous value, got %v", got.BlobStd)
	}
	if base.Seed != 0 {
		t.Fatalf("input config must not be modified")
	}
}

func TestApplyFields_ValidatesResult(t *testing.T) {
	got, err := ApplyFields(*DefaultConfig(), map[string]string{FieldGridResolution: "1", FieldCircleNoise: "-3"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.GridResolution != 30 || got.CircleNoise != 0 {
		t.Fatalf("expected clamped values, got resolution=%d noise=%v", got.GridResolution, got.CircleNoise)
	}
}

func TestParseBoolLoose(t *testing.T) {
	for in, want := range map[string]bool{"on": true, "T": true, "0": false, "no": false} {
		got, ok := parseBoolLoose(in)
		if !ok || got != want {
			t.Fatalf("parseBoolLoose(%q) = %v,%v", in, got, ok)
		}
	}
	if _, ok := parseBoolLoose("maybe"); ok {
		t.Fatalf("expected failure for unknown value")
	}
}

func TestApplyFields_CapsGridResolution(t *testing.T) {
	got, err := ApplyFields(*DefaultConfig(), map[string]string{FieldGridResolution: "100000", FieldBlobSamples: "99999"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.GridResolution != MaxGridResolution || got.BlobSamples != MaxSamples {
		t.Fatalf("expected capped values, got resolution=%d samples=%d", got.GridResolution, got.BlobSamples)
	}
}
