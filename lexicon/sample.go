package lexicon

// Sample returns a small built-in lexicon covering every category the
// grammar layers handle. A fresh slice is returned on each call.
func Sample() []*Lexeme {
	out := make([]*Lexeme, 0, 128)

	nouns := []*Lexeme{
		New("kitap", Noun, SecondaryNone, Voicing),
		New("kâğıt", Noun, SecondaryNone, Voicing),
		New("ağaç", Noun, SecondaryNone, Voicing),
		New("çocuk", Noun, SecondaryNone, Voicing),
		New("köpek", Noun, SecondaryNone, Voicing),
		New("ekmek", Noun, SecondaryNone, Voicing),
		New("renk", Noun, SecondaryNone, Voicing),
		New("hak", Noun, SecondaryNone, Doubling, NoVoicing),
		New("ağız", Noun, SecondaryNone, LastVowelDrop),
		New("burun", Noun, SecondaryNone, LastVowelDrop),
		New("şehir", Noun, SecondaryNone, LastVowelDrop),
		New("saat", Noun, SecondaryNone, InverseHarmony, NoVoicing),
		New("at", Noun, SecondaryNone, NoVoicing),
		New("top", Noun, SecondaryNone, NoVoicing),
		New("kapı", Noun, SecondaryNone),
		New("ev", Noun, SecondaryNone),
		New("göz", Noun, SecondaryNone),
		New("el", Noun, SecondaryNone),
		New("masa", Noun, SecondaryNone),
		New("okul", Noun, SecondaryNone),
		New("gün", Noun, SecondaryNone),
		New("araba", Noun, SecondaryNone),
		New("dağ", Noun, SecondaryNone),
		New("yol", Noun, SecondaryNone),
		New("kalem", Noun, SecondaryNone),
		New("defter", Noun, SecondaryNone),
		New("yüz", Noun, SecondaryNone),
		New("insan", Noun, SecondaryNone),
		New("yarın", Noun, Time),
		New("akşam", Noun, Time),
	}
	out = append(out, nouns...)

	adjectives := []*Lexeme{
		New("güzel", Adjective, SecondaryNone),
		New("büyük", Adjective, SecondaryNone, Voicing),
		New("küçük", Adjective, SecondaryNone, Voicing),
		New("mavi", Adjective, SecondaryNone),
		New("kırmızı", Adjective, SecondaryNone),
		New("iyi", Adjective, SecondaryNone),
		New("kötü", Adjective, SecondaryNone),
		New("yeni", Adjective, SecondaryNone),
		New("eski", Adjective, SecondaryNone),
		New("uzun", Adjective, SecondaryNone),
		New("kısa", Adjective, SecondaryNone),
		New("hızlı", Adjective, SecondaryNone),
	}
	out = append(out, adjectives...)

	adverbs := []*Lexeme{
		New("çok", Adverb, SecondaryNone),
		New("şimdi", Adverb, SecondaryNone),
		New("hemen", Adverb, SecondaryNone),
		New("yarın", Adverb, Time),
	}
	out = append(out, adverbs...)

	verbs := []*Lexeme{
		NewVerb("gelmek", AoristI),
		NewVerb("gitmek", Voicing, AoristA),
		NewVerb("yapmak", AoristA),
		NewVerb("yazmak", AoristA),
		NewVerb("sevmek", AoristA),
		NewVerb("açmak", AoristA),
		NewVerb("içmek", AoristA),
		NewVerb("bakmak", AoristA),
		NewVerb("okumak", AoristI),
		NewVerb("bilmek", AoristI),
		NewVerb("almak", AoristI),
		NewVerb("görmek", AoristI),
		NewVerb("vermek", AoristI),
		NewVerb("olmak", AoristI),
		NewVerb("kalmak", AoristI),
		NewVerb("yüzmek", AoristA),
		NewVerb("başlamak", ProgressiveVowelDrop),
		NewVerb("aramak", ProgressiveVowelDrop),
		NewVerb("beklemek", ProgressiveVowelDrop),
		NewVerb("söylemek", ProgressiveVowelDrop),
		NewVerb("oynamak", ProgressiveVowelDrop),
		NewVerb("yürümek"),
		NewVerb("çalışmak"),
		NewVerb("anlamak", ProgressiveVowelDrop),
	}
	out = append(out, verbs...)

	pronouns := []*Lexeme{
		New("ben", Pronoun, Personal),
		New("sen", Pronoun, Personal),
		New("o", Pronoun, Personal),
		New("biz", Pronoun, Personal),
		New("siz", Pronoun, Personal),
		New("onlar", Pronoun, Personal),
		New("bu", Pronoun, Demonstrative),
		New("şu", Pronoun, Demonstrative),
		New("o", Pronoun, Demonstrative),
		New("kendi", Pronoun, Reflexive),
		New("kim", Pronoun, QuestionPron),
		New("hepsi", Pronoun, Quantitative),
	}
	out = append(out, pronouns...)

	closed := []*Lexeme{
		New("bir", Determiner, SecondaryNone),
		New("her", Determiner, SecondaryNone),
		New("bazı", Determiner, SecondaryNone),
		New("bu", Determiner, SecondaryNone),
		New("şu", Determiner, SecondaryNone),
		New("ve", Conjunction, SecondaryNone),
		New("ama", Conjunction, SecondaryNone),
		New("veya", Conjunction, SecondaryNone),
		New("ah", Interjection, SecondaryNone),
		New("eyvah", Interjection, SecondaryNone),
		New("için", Postposition, SecondaryNone),
		New("gibi", Postposition, SecondaryNone),
		New("kadar", Postposition, SecondaryNone),
		New("mi", Question, SecondaryNone),
		New(".", Punctuation, SecondaryNone),
		New(",", Punctuation, SecondaryNone),
		New("!", Punctuation, SecondaryNone),
		New("?", Punctuation, SecondaryNone),
	}
	out = append(out, closed...)

	for _, n := range cardinals {
		out = append(out, New(n.text, Numeral, Card, n.attrs...))
	}
	return out
}

type cardinal struct {
	text  string
	attrs []Attribute
}

// cardinals lists the textual cardinal numerals.
var cardinals = []cardinal{
	{text: "sıfır"},
	{text: "bir"},
	{text: "iki"},
	{text: "üç", attrs: []Attribute{NoVoicing}},
	{text: "dört", attrs: []Attribute{Voicing}},
	{text: "beş"},
	{text: "altı"},
	{text: "yedi"},
	{text: "sekiz"},
	{text: "dokuz"},
	{text: "on"},
	{text: "yirmi"},
	{text: "otuz"},
	{text: "kırk", attrs: []Attribute{NoVoicing}},
	{text: "elli"},
	{text: "altmış"},
	{text: "yetmiş"},
	{text: "seksen"},
	{text: "doksan"},
	{text: "yüz"},
	{text: "bin"},
	{text: "milyon"},
	{text: "milyar"},
}
