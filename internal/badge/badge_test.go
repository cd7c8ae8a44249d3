package badge

import (
	"errors"
	"reflect"
	"testing"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

func TestResolve_AllDocumentedBadges(t *testing.T) {
	cases := []struct {
		code    string
		meaning string
	}{
		{"MF", "Master File"},
		{"MF*", "Master File Form"},
		{"LF", "Local File"},
		{"LF*", "Local File Form"},
		{"Fm", "Forms / Disclosures"},
		{"Nt", "CbCR Notification"},
	}

	for _, tc := range cases {
		meaning, err := Resolve(tc.code)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", tc.code, err)
		}
		if meaning != tc.meaning {
			t.Errorf("Resolve(%q) = %q, want %q", tc.code, meaning, tc.meaning)
		}
	}
}

func TestResolve_UnknownCode(t *testing.T) {
	_, err := Resolve("CbCR")
	if err == nil {
		t.Fatal("expected error for unknown code")
	}
	if !errors.Is(err, ErrUnknownCode) {
		t.Errorf("expected ErrUnknownCode, got %v", err)
	}
}

func TestCodes_ConventionLength(t *testing.T) {
	codes := Codes()
	if len(codes) != 6 {
		t.Fatalf("expected 6 codes, got %d", len(codes))
	}
	for _, code := range codes {
		if len(code) > 4 {
			t.Errorf("code %q exceeds the 4-character convention", code)
		}
	}
}

func TestFor(t *testing.T) {
	cases := []struct {
		name string
		rec  review.Record
		want []string
	}{
		{
			name: "full profile",
			rec: review.Record{
				Thresholds: []string{
					"**MF**: Consolidated group revenue above EUR 750m",
					"**LF**: Local turnover above EUR 50m",
				},
				Forms: []string{"[Form 3CEB](#)"},
				CbCR:  []string{"Notification due with the CIT return"},
			},
			want: []string{"MF", "LF", "Fm", "Nt"},
		},
		{
			name: "placeholders do not count",
			rec: review.Record{
				Thresholds: []string{"**MF**: —", "**LF**: —"},
				Forms:      []string{"—"},
				CbCR:       []string{"—"},
			},
			want: nil,
		},
		{
			name: "local file only",
			rec: review.Record{
				Thresholds: []string{"**MF**: —", "**LF**: Documentation above EUR 6m related-party volume"},
			},
			want: []string{"LF"},
		},
		{
			name: "empty record",
			rec:  review.Record{Name: "Nowhereland"},
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := For(tc.rec)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("For() = %v, want %v", got, tc.want)
			}
		})
	}
}
