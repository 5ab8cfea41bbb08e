package repository

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// newNetworkID returns a readable id of the form "net-12345-6789". Collisions
// are possible and handled by the caller.
func newNetworkID() (string, error) {
	hi, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", err
	}
	lo, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("net-%05d-%04d", 10000+hi.Int64(), 1000+lo.Int64()), nil
}
