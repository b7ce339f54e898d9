package credentials

import (
	"crypto/rand"
	"math/big"
)

// Word lists for generating friendly guest nicknames
var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cool", "swift", "clever", "jolly",
	"mighty", "super", "silly", "wild", "funny", "lucky", "magic", "bouncy",
	"cheerful", "daring", "eager", "gentle", "giggly", "jazzy", "kindly",
	"lively", "merry", "perky", "quick", "snappy", "sparkly", "zippy",
}

var animals = []string{
	"puppy", "kitten", "bunny", "panda", "koala", "otter", "duckling", "fawn",
	"cub", "chick", "piglet", "lamb", "owlet", "fox", "hedgehog", "penguin",
	"dolphin", "turtle", "seal", "walrus", "raccoon", "squirrel", "chipmunk",
	"hamster", "gecko", "parrot", "toucan", "flamingo",
}

// GenerateGuestName generates a random nickname in the format
// "adjective-animal" so guests get something friendlier than a UUID.
func GenerateGuestName() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	animal, err := randomElement(animals)
	if err != nil {
		return "", err
	}

	return adjective + "-" + animal, nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
