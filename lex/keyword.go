package lex

type Keyword uint8

const (
	KeywordInvalid Keyword = iota
	KeywordConst
	KeywordVar
	KeywordRecord
	KeywordUnion
	KeywordImpl
	KeywordTrait
	KeywordMod
	KeywordIf
	KeywordElse
	KeywordFor
	KeywordIn
	KeywordMatch
	KeywordReturn
	KeywordU32
	KeywordU16
	KeywordU8
	KeywordI32
	KeywordI16
	KeywordI8
	KeywordF32
	KeywordF16
	KeywordPrint
)

// keywords is ordered; rules are built in this order.
var keywords = []struct {
	Text    string
	Keyword Keyword
}{
	{"const", KeywordConst},
	{"var", KeywordVar},
	{"record", KeywordRecord},
	{"union", KeywordUnion},
	{"impl", KeywordImpl},
	{"trait", KeywordTrait},
	{"mod", KeywordMod},
	{"if", KeywordIf},
	{"else", KeywordElse},
	{"for", KeywordFor},
	{"in", KeywordIn},
	{"match", KeywordMatch},
	{"return", KeywordReturn},
	{"u32", KeywordU32},
	{"u16", KeywordU16},
	{"u8", KeywordU8},
	{"i32", KeywordI32},
	{"i16", KeywordI16},
	{"i8", KeywordI8},
	{"f32", KeywordF32},
	{"f16", KeywordF16},
	{"print", KeywordPrint},
}

func (k Keyword) String() string {
	for _, kw := range keywords {
		if kw.Keyword == k {
			return kw.Text
		}
	}
	return "invalid"
}
