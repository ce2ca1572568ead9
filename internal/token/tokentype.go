package token

type TokenType uint

const (
	// Punctuators.
	LEFT_BRACKET TokenType = iota
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
	COLON

	// Literals.
	INT
	FLOAT
	STRING
	NAME
	VARIABLE

	// Keywords.
	TRUE
	FALSE
	NULL

	EOF
)

var tokenTypeNames = map[TokenType]string{
	LEFT_BRACKET:  "LEFT_BRACKET",
	RIGHT_BRACKET: "RIGHT_BRACKET",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COLON:         "COLON",
	INT:           "INT",
	FLOAT:         "FLOAT",
	STRING:        "STRING",
	NAME:          "NAME",
	VARIABLE:      "VARIABLE",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	NULL:          "NULL",
	EOF:           "EOF",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
