package lexer

// keywordSet is the closed list of reserved identifiers.
var keywordSet = func() map[string]struct{} {
	words := []string{
		"unsigned", "signed", "char", "short", "int", "long", "float", "double",
		"void", "struct", "enum", "union", "typedef", "const", "volatile",
		"extern", "static", "__ignore_typecheck", "return", "include", "if",
		"else", "while", "for", "do", "break", "continue", "switch", "case",
		"default", "goto", "auto", "register", "restrict", "inline", "virtual",
		"explicit", "friend", "constexpr", "mutable", "operator", "this",
		"sizeof", "alignof", "decltype", "nullptr", "true", "false", "bool",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// operatorLeadSet holds the leading bytes that dispatch to the
// operator-or-string recognizer.
var operatorLeadSet = byteSet("+-*%=!~&|^<>([,.?")

// symbolLeadSet holds the leading bytes that dispatch to the plain
// symbol recognizer.
var symbolLeadSet = byteSet("{;:]})#\\")

// treatedAsOne holds operator leads that are never extended with a
// second character, even when one immediately follows.
var treatedAsOne = byteSet("(,[.?*")

// singleOperatorAlphabet holds the bytes that may legally serve as the
// second character of a multi-character operator.
var singleOperatorAlphabet = byteSet("+-/*<>=&|!~^%?.,([")

// validOperators is the closed set of operator lexemes the language
// recognizes, spanning one, two and three characters.
var validOperators = func() map[string]struct{} {
	ops := []string{
		"+", "-", "*", "/", "%", "!", "^", "&", "|", "~", ">", "<", "=", ".", ",", "?", "(", "[",
		"==", "!=", "<=", ">=", "&&", "||", "++", "--", "+=", "-=", "*=", "/=", "%=", "<<", ">>", "->",
		"...",
	}

	set := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return set
}()

// escapeTable maps a character-literal escape introducer to its
// decoded byte value. A missing key correctly yields the zero value,
// matching the observed (if dubious) behavior of unknown escapes
// silently decoding to 0.
var escapeTable = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'\'': '\'',
}

func byteSet(chars string) map[byte]struct{} {
	set := make(map[byte]struct{}, len(chars))
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = struct{}{}
	}
	return set
}

func isIdentByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
