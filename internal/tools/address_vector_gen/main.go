// Command address_vector_gen prints deterministic account vectors for every
// built-in network as JSON lines. Private keys are filled with a repeated
// seed byte so runs are reproducible.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"symbol.dev/sdk/keys"
	"symbol.dev/sdk/network"
)

type vector struct {
	Network    string          `json:"network"`
	PrivateKey string          `json:"private_key"`
	PublicKey  string          `json:"public_key"`
	Address    string          `json:"address"`
	Bytes      network.Address `json:"address_bytes"`
}

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	count := flag.Int("count", 4, "Vectors per network")
	firstSeed := flag.Uint("seed", 0xA1, "Seed byte of the first vector")
	flag.Parse()

	if err := generate(os.Stdout, *count, byte(*firstSeed)); err != nil {
		log.Fatal("generate vectors", zap.Error(err))
	}
	log.Info("vectors written", zap.Int("per_network", *count), zap.Int("networks", len(network.Builtins())))
}

func generate(w io.Writer, count int, firstSeed byte) error {
	enc := json.NewEncoder(w)
	for _, n := range network.Builtins() {
		for i := 0; i < count; i++ {
			privateKey, err := keys.NewPrivateKey(bytes.Repeat([]byte{firstSeed + byte(i)}, keys.PrivateKeySize))
			if err != nil {
				return err
			}
			kp := n.NewKeyPair(privateKey)
			address := n.PublicKeyToAddress(kp.PublicKey())
			if !n.IsValidAddress(address) {
				kp.Erase()
				return fmt.Errorf("%s: derived address %s does not validate", n, address)
			}

			v := vector{
				Network:    n.String(),
				PrivateKey: kp.PrivateKey().RevealHex(),
				PublicKey:  kp.PublicKey().String(),
				Address:    address.String(),
				Bytes:      address,
			}
			kp.Erase()
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
	}
	return nil
}
