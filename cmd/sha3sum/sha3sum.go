// sha3sum is a very basic checksum command.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/JeninSutradhar/keccak-go/sha3"
)

var alg string

func init() {
	flag.StringVar(&alg, "alg", "256", "digest size: 224, 256, 384, or 512")
}

// sumBytes dispatches to the fixed-size Sum function named by alg and
// returns its digest as a byte slice.
func sumBytes(data []byte) ([]byte, error) {
	switch alg {
	case "224":
		sum := sha3.Sum224(data)
		return sum[:], nil
	case "256":
		sum := sha3.Sum256(data)
		return sum[:], nil
	case "384":
		sum := sha3.Sum384(data)
		return sum[:], nil
	case "512":
		sum := sha3.Sum512(data)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("unknown -alg %q, want one of 224, 256, 384, 512", alg)
	}
}

func sumFile(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	digest, err := sumBytes(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}

func sumReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	digest, err := sumBytes(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		checksum, err := sumReader(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sha3sum: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(checksum)
		return
	}

	status := 0
	for _, filename := range flag.Args() {
		checksum, err := sumFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sha3sum: %s: %s\n", filename, err)
			status = 1
			continue
		}
		fmt.Printf("SHA3-%s(%s) = %s\n", alg, filename, checksum)
	}
	os.Exit(status)
}
