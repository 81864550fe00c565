package applier

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
	"github.com/az-ai-labs/turkmorph/phonetics"
	"github.com/az-ai-labs/turkmorph/suffixgraph"
)

type env struct {
	t *testing.T
	g *suffixgraph.Graph
	a *Applier
}

func newEnv(t *testing.T) *env {
	t.Helper()
	g, err := suffixgraph.Build(suffixgraph.DefaultLayers()...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return &env{t: t, g: g, a: New(nil)}
}

func (e *env) start(word, rootStr string, lex *lexicon.Lexeme, state string) *morpheme.Container {
	root := morpheme.NewRoot(rootStr, lex, lex.Attributes)
	return morpheme.NewContainer(root, e.g.State(state), word[len(rootStr):])
}

// step applies suffix and requires exactly one fitting form.
func (e *env) step(c *morpheme.Container, word, suffix, to string) *morpheme.Container {
	e.t.Helper()
	got := e.a.TrySuffix(c, e.g.Suffix(suffix), e.g.State(to), word)
	if len(got) != 1 {
		e.t.Fatalf("%s + %s -> %s: got %d containers, want 1", c.FormatNoSurface(), suffix, to, len(got))
	}
	return got[0]
}

// nominal walks A3sg+Pnon from NOUN_ROOT.
func (e *env) nominal(c *morpheme.Container, word string) *morpheme.Container {
	e.t.Helper()
	c = e.step(c, word, "A3sg", "NOUN_WITH_AGREEMENT")
	return e.step(c, word, "Pnon", "NOUN_WITH_POSSESSION")
}

func noun(lemma string, attrs ...lexicon.Attribute) *lexicon.Lexeme {
	return lexicon.New(lemma, lexicon.Noun, lexicon.SecondaryNone, attrs...)
}

func TestTrySuffixDative(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	word := "kapıya"
	c := e.nominal(e.start(word, "kapı", noun("kapı"), suffixgraph.NounRoot), word)
	c = e.step(c, word, "Dat", "NOUN_WITH_CASE")

	if got, want := c.Format(), "kapı(kapı)+Noun+A3sg+Pnon+Dat(+yA[ya])"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if c.Remaining() != "" {
		t.Errorf("Remaining() = %q, want empty", c.Remaining())
	}
}

func TestTrySuffixVoicedMatch(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	word := "kitapçığı"
	c := e.nominal(e.start(word, "kitap", noun("kitap", lexicon.Voicing), suffixgraph.NounRoot), word)
	c = e.step(c, word, "Nom_Deriv", "NOUN_NOM_DERIV")
	c = e.step(c, word, "Dim", suffixgraph.NounRoot)

	if !c.Expectations().Has(phonetics.VowelStart) {
		t.Fatalf("Expectations() = %v after voiced match, want VowelStart", c.Expectations())
	}
	c = e.nominal(c, word)

	// A consonant-initial case cannot follow the voiced letter.
	if got := e.a.TrySuffix(c, e.g.Suffix("Loc"), e.g.State("NOUN_WITH_CASE"), word); len(got) != 0 {
		t.Errorf("Loc after voiced Dim: got %d containers, want 0", len(got))
	}

	c = e.step(c, word, "Acc", "NOUN_WITH_CASE")
	want := "kitap(kitap)+Noun+A3sg+Pnon+Nom+Noun+Dim(cIk[çığ])+A3sg+Pnon+Acc(+yI[ı])"
	if got := c.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if c.Expectations() != 0 {
		t.Errorf("Expectations() = %v, want none", c.Expectations())
	}
}

func TestTrySuffixNoVoicingIntoVerbRoot(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	word := "okudu"
	c := e.start(word, "oku", lexicon.NewVerb("okumak", lexicon.AoristI), suffixgraph.VerbRoot)
	c = e.step(c, word, "Verb_Plain_Deriv_Transition", "VERB_PLAIN_DERIV")

	if got := e.a.TrySuffix(c, e.g.Suffix("Caus"), e.g.State(suffixgraph.VerbRoot), word); len(got) != 0 {
		t.Errorf("Caus matched %q with voicing: %v", word, got)
	}
}

func TestTrySuffixStemMustNotChange(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	word := "başlıyor"
	lex := lexicon.NewVerb("başlamak", lexicon.ProgressiveVowelDrop)

	full := e.step(e.start(word, "başla", lex, suffixgraph.VerbRoot), word, suffixgraph.Positive, suffixgraph.VerbWithPolarity)
	if got := e.a.TrySuffix(full, e.g.Suffix(suffixgraph.Progressive), e.g.State(suffixgraph.VerbWithTense), word); len(got) != 0 {
		t.Errorf("Prog1 on the full stem: got %v, want nothing", got)
	}

	dropped := e.step(e.start(word, "başl", lex, suffixgraph.VerbRoot), word, suffixgraph.Positive, suffixgraph.VerbWithPolarity)
	c := e.step(dropped, word, suffixgraph.Progressive, suffixgraph.VerbWithTense)
	if got, want := c.Format(), "başl(başlamak)+Verb+Pos+Prog1(Iyor[ıyor])"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTrySuffixAorist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word, root string
		lex        *lexicon.Lexeme
		want       string
	}{
		{"gelir", "gel", lexicon.NewVerb("gelmek", lexicon.AoristI), "gel(gelmek)+Verb+Pos+Aor(+Ir[ir])"},
		{"yapar", "yap", lexicon.NewVerb("yapmak", lexicon.AoristA), "yap(yapmak)+Verb+Pos+Aor(+Ar[ar])"},
		{"okur", "oku", lexicon.NewVerb("okumak", lexicon.AoristI), "oku(okumak)+Verb+Pos+Aor(+Ir[r])"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)
			c := e.step(e.start(tt.word, tt.root, tt.lex, suffixgraph.VerbRoot), tt.word, suffixgraph.Positive, suffixgraph.VerbWithPolarity)
			c = e.step(c, tt.word, "Aor", suffixgraph.VerbWithTense)
			if got := c.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrySuffixPostcondition(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	lex := lexicon.NewVerb("gelmek", lexicon.AoristI)

	word := "gelmiyor"
	c := e.step(e.start(word, "gel", lex, suffixgraph.VerbRoot), word, "Neg", suffixgraph.VerbWithPolarity)
	c = e.step(c, word, suffixgraph.Progressive, suffixgraph.VerbWithTense)
	if got, want := c.Format(), "gel(gelmek)+Verb+Neg(m[m])+Prog1(Iyor[iyor])"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	// The short negative only precedes the progressive.
	word = "gelmdi"
	c = e.step(e.start(word, "gel", lex, suffixgraph.VerbRoot), word, "Neg", suffixgraph.VerbWithPolarity)
	if got := e.a.TrySuffix(c, e.g.Suffix(suffixgraph.Past), e.g.State(suffixgraph.VerbWithTense), word); len(got) != 0 {
		t.Errorf("Past after short Neg: got %v, want nothing", got)
	}
}

func TestTrySuffixPostDerivation(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	word := "kitaplarcık"
	c := e.start(word, "kitap", noun("kitap", lexicon.Voicing), suffixgraph.NounRoot)
	c = e.step(c, word, "A3pl", "NOUN_WITH_AGREEMENT")
	c = e.step(c, word, "Pnon", "NOUN_WITH_POSSESSION")
	c = e.step(c, word, "Nom_Deriv", "NOUN_NOM_DERIV")

	if got := e.a.TrySuffix(c, e.g.Suffix("Dim"), e.g.State(suffixgraph.NounRoot), word); len(got) != 0 {
		t.Errorf("Dim after plural: got %v, want nothing", got)
	}
}

func TestTransitionAllowed(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	word := "kitapçıkçık"
	c := e.nominal(e.start(word, "kitap", noun("kitap"), suffixgraph.NounRoot), word)
	if TransitionAllowed(c, e.g.Suffix("A3pl")) {
		t.Error("A3pl allowed after A3sg")
	}

	c = e.step(c, word, "Nom_Deriv", "NOUN_NOM_DERIV")
	c = e.step(c, word, "Dim", suffixgraph.NounRoot)
	if !TransitionAllowed(c, e.g.Suffix("A3pl")) {
		t.Error("A3pl not allowed after a derivation")
	}

	c = e.nominal(c, word)
	c = e.step(c, word, "Nom_Deriv", "NOUN_NOM_DERIV")
	if TransitionAllowed(c, e.g.Suffix("Dim")) {
		t.Error("Dim allowed directly after Dim")
	}
	if !TransitionAllowed(c, e.g.Suffix("Agt")) {
		t.Error("Agt not allowed after Dim")
	}
}

func TestRejectLogging(t *testing.T) {
	t.Parallel()

	g, err := suffixgraph.Build(suffixgraph.DefaultLayers()...)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	a := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	word := "kapıda"
	lex := noun("kapı")
	c := morpheme.NewContainer(morpheme.NewRoot("kapı", lex, 0), g.State(suffixgraph.NounRoot), "da")
	if got := a.TrySuffix(c, g.Suffix("A3pl"), g.State("NOUN_WITH_AGREEMENT"), word); len(got) != 0 {
		t.Fatalf("A3pl matched %q", word)
	}

	out := buf.String()
	for _, want := range []string{"suffix rejected", "suffix=A3pl", "form=lAr", "branch=kapı(kapı)+Noun"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func BenchmarkTrySuffix(b *testing.B) {
	g, err := suffixgraph.Build(suffixgraph.DefaultLayers()...)
	if err != nil {
		b.Fatal(err)
	}
	a := New(nil)
	lex := noun("kitap", lexicon.Voicing)
	word := "kitaplar"
	c := morpheme.NewContainer(morpheme.NewRoot("kitap", lex, 0), g.State(suffixgraph.NounRoot), "lar")
	a3pl := g.Suffix("A3pl")
	to := g.State("NOUN_WITH_AGREEMENT")

	for b.Loop() {
		a.TrySuffix(c, a3pl, to, word)
	}
}
