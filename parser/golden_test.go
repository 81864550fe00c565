package parser

import (
	"encoding/json"
	"flag"
	"os"
	"slices"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase lists analyses a word must have. The file may list a subset;
// -update rewrites it with every analysis.
type goldenCase struct {
	Word     string   `json:"word"`
	Analyses []string `json:"analyses"`
}

const goldenPath = "../data/golden/parser.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	p := NewUpperCase(newFixture(t).parser())
	for _, tc := range cases {
		t.Run(tc.Word, func(t *testing.T) {
			got := mustParse(t, p, tc.Word)
			for _, want := range tc.Analyses {
				if !slices.Contains(got, want) {
					t.Errorf("Parse(%q) missing %q", tc.Word, want)
				}
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	p := NewUpperCase(newFixture(t).parser())
	for i := range cases {
		got := mustParse(t, p, cases[i].Word)
		slices.Sort(got)
		cases[i].Analyses = got
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/parser.json")
}
