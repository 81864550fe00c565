package rootmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/phonetics"
)

type rootView struct {
	Str          string
	Expectations phonetics.Expectations
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lex  *lexicon.Lexeme
		want []rootView
	}{
		{"plain", lexicon.New("kapı", lexicon.Noun, lexicon.SecondaryNone), []rootView{{"kapı", 0}}},
		{"voicing", lexicon.New("kitap", lexicon.Noun, lexicon.SecondaryNone, lexicon.Voicing),
			[]rootView{{"kitap", phonetics.ConsonantStart}, {"kitab", phonetics.VowelStart}}},
		{"voicing nk", lexicon.New("renk", lexicon.Noun, lexicon.SecondaryNone, lexicon.Voicing),
			[]rootView{{"renk", phonetics.ConsonantStart}, {"reng", phonetics.VowelStart}}},
		{"voicing verb", lexicon.NewVerb("gitmek", lexicon.Voicing),
			[]rootView{{"git", phonetics.ConsonantStart}, {"gid", phonetics.VowelStart}}},
		{"no voicing", lexicon.New("at", lexicon.Noun, lexicon.SecondaryNone, lexicon.NoVoicing), []rootView{{"at", 0}}},
		{"doubling", lexicon.New("hak", lexicon.Noun, lexicon.SecondaryNone, lexicon.Doubling, lexicon.NoVoicing),
			[]rootView{{"hak", phonetics.ConsonantStart}, {"hakk", phonetics.VowelStart}}},
		{"last vowel drop", lexicon.New("ağız", lexicon.Noun, lexicon.SecondaryNone, lexicon.LastVowelDrop),
			[]rootView{{"ağız", phonetics.ConsonantStart}, {"ağz", phonetics.VowelStart}}},
		{"progressive vowel drop", lexicon.NewVerb("başlamak", lexicon.ProgressiveVowelDrop),
			[]rootView{{"başla", 0}, {"başl", 0}}},
		{"pronoun", lexicon.New("ben", lexicon.Pronoun, lexicon.Personal), []rootView{{"ben", 0}, {"ban", 0}}},
		{"question particle", lexicon.New("mi", lexicon.Question, lexicon.SecondaryNone),
			[]rootView{{"mı", 0}, {"mi", 0}, {"mu", 0}, {"mü", 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got []rootView
			for _, r := range Generate(tt.lex) {
				if r.Lexeme != tt.lex {
					t.Errorf("root %q has lexeme %v", r.Str, r.Lexeme)
				}
				got = append(got, rootView{r.Str, r.Expectations})
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Generate(%v) mismatch (-want +got):\n%s", tt.lex, diff)
			}
		})
	}
}

func TestGenerateInverseHarmony(t *testing.T) {
	t.Parallel()

	lex := lexicon.New("saat", lexicon.Noun, lexicon.SecondaryNone, lexicon.InverseHarmony, lexicon.NoVoicing)
	roots := Generate(lex)
	if len(roots) != 1 {
		t.Fatalf("Generate(saat) = %d roots, want 1", len(roots))
	}
	attrs := roots[0].PhoneticAttributes
	if !attrs.Has(phonetics.LastVowelFrontal) || attrs.Has(phonetics.LastVowelBack) {
		t.Errorf("saat attributes = %v, want front", attrs)
	}
}

func TestGenerateAorist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lex  *lexicon.Lexeme
		want lexicon.Attribute
	}{
		{lexicon.NewVerb("yapmak"), lexicon.AoristA},
		{lexicon.NewVerb("çalışmak"), lexicon.AoristI},
		{lexicon.NewVerb("gelmek", lexicon.AoristI), lexicon.AoristI},
	}

	for _, tt := range tests {
		attrs := Generate(tt.lex)[0].Attributes
		if !attrs.Has(tt.want) {
			t.Errorf("Generate(%v) attributes = %v, want %v", tt.lex, attrs, tt.want)
		}
		if attrs.Has(lexicon.AoristA) && attrs.Has(lexicon.AoristI) {
			t.Errorf("Generate(%v) has both aorist classes", tt.lex)
		}
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	book := lexicon.New("kitap", lexicon.Noun, lexicon.SecondaryNone, lexicon.Voicing)
	yuzNoun := lexicon.New("yüz", lexicon.Noun, lexicon.SecondaryNone)
	yuzNum := lexicon.New("yüz", lexicon.Numeral, lexicon.Card)
	m := New([]*lexicon.Lexeme{book, yuzNoun, yuzNum})

	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
	if got := m.Lookup("kitab"); len(got) != 1 || got[0].Lexeme != book {
		t.Errorf("Lookup(kitab) = %v", got)
	}
	homographs := m.Lookup("yüz")
	if len(homographs) != 2 || homographs[0].Lexeme != yuzNoun || homographs[1].Lexeme != yuzNum {
		t.Errorf("Lookup(yüz) = %v, want noun then numeral", homographs)
	}
	if m.Find("yüz", yuzNum) != homographs[1] {
		t.Error("Find(yüz, numeral) did not return the numeral root")
	}
	if m.Find("kitab", yuzNoun) != nil {
		t.Error("Find returned a root of another lexeme")
	}
	if got := m.Lookup("xyz"); got != nil {
		t.Errorf("Lookup(xyz) = %v, want nil", got)
	}
}

func TestMapSample(t *testing.T) {
	t.Parallel()

	m := New(lexicon.Sample())
	for _, s := range []string{"kitab", "gid", "başl", "ban", "mü", "ağz", "reng", "dörd"} {
		if len(m.Lookup(s)) == 0 {
			t.Errorf("Lookup(%q) found no roots", s)
		}
	}
}
