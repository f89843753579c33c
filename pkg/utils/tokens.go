package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokens counts the tokens a chat model will see for text.
func NumTokens(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-4o")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
