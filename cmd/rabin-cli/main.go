// Package main provides the rabin-cli demonstration driver for rabin-go.
package main

import (
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/urfave/cli/v2"

	rabin "github.com/BackendStack21/rabin-go"
	"github.com/BackendStack21/rabin-go/cipher"
	"github.com/BackendStack21/rabin-go/core"
	"github.com/BackendStack21/rabin-go/encoding"
	"github.com/BackendStack21/rabin-go/keypair"
	"github.com/BackendStack21/rabin-go/utils"
)

const seedDomain = "rabin-cli-seed-v1"

var commands = []*cli.Command{
	{
		Name:  "keygen",
		Usage: "Generate a Rabin keypair",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bits",
				Aliases: []string{"b"},
				Usage:   "Bit length of each prime (overrides --level)",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "Security level: RAB-512, RAB-1024 or RAB-2048",
				Value:   string(rabin.RAB512),
			},
			&cli.StringFlag{
				Name:  "seed",
				Usage: "Passphrase for deterministic key derivation (demo only)",
			},
		},
		Action: runKeygen,
	},
	{
		Name:  "encrypt",
		Usage: "Encrypt a message under a public modulus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "n",
				Usage:    "Public modulus (decimal)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "Plaintext to encode with the alphabet and encrypt",
			},
			&cli.StringFlag{
				Name:    "number",
				Aliases: []string{"m"},
				Usage:   "Plaintext as a decimal integer (alternative to --text)",
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "Symbol alphabet for --text",
				Value: encoding.DefaultAlphabet,
			},
		},
		Action: runEncrypt,
	},
	{
		Name:  "decrypt",
		Usage: "Recover the four plaintext candidates",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ciphertext",
				Aliases:  []string{"c"},
				Usage:    "Ciphertext (decimal)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "p",
				Usage:    "First private prime (decimal)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "q",
				Usage:    "Second private prime (decimal)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "decode",
				Usage: "Also decode each candidate with the alphabet",
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "Symbol alphabet for --decode",
				Value: encoding.DefaultAlphabet,
			},
		},
		Action: runDecrypt,
	},
	{
		Name:  "encode",
		Usage: "Encode text as an integer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "text",
				Aliases:  []string{"t"},
				Required: true,
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Value: encoding.DefaultAlphabet,
			},
		},
		Action: runEncode,
	},
	{
		Name:  "decode",
		Usage: "Decode an integer back to text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "number",
				Aliases:  []string{"m"},
				Usage:    "Integer to decode (decimal)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Value: encoding.DefaultAlphabet,
			},
		},
		Action: runDecode,
	},
}

func main() {
	app := &cli.App{
		Name:     "rabin-cli",
		Usage:    "Naive Rabin cryptosystem demo tools",
		Version:  rabin.Version,
		Commands: commands,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runKeygen(c *cli.Context) error {
	params, err := core.GetParams(rabin.SecurityLevel(c.String("level")))
	if err != nil {
		return err
	}
	bits := params.Bits
	if c.IsSet("bits") {
		bits = c.Int("bits")
	}

	var kp *rabin.Keypair
	if passphrase := c.String("seed"); passphrase != "" {
		seed := utils.Shake256WithDomain(seedDomain, []byte(passphrase), 32)
		kp, err = keypair.GenerateFromSeed(bits, seed)
		utils.Zeroize(seed)
	} else {
		kp, err = keypair.Generate(bits)
	}
	if err != nil {
		return err
	}

	fmt.Printf("n = %s\n", kp.N)
	fmt.Printf("p = %s\n", kp.P)
	fmt.Printf("q = %s\n", kp.Q)
	return nil
}

func runEncrypt(c *cli.Context) error {
	n, err := parseInt(c.String("n"), "n")
	if err != nil {
		return err
	}

	var message *big.Int
	switch {
	case c.IsSet("text"):
		message, err = encoding.Encode(c.String("text"), c.String("alphabet"))
		if err != nil {
			return err
		}
	case c.IsSet("number"):
		message, err = parseInt(c.String("number"), "number")
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either --text or --number is required")
	}

	if message.Cmp(n) >= 0 {
		fmt.Fprintln(os.Stderr, "warning: message >= n, the plaintext will not be recoverable")
	}

	ciphertext, err := cipher.Encrypt(message, n)
	if err != nil {
		return err
	}

	fmt.Printf("message    = %s\n", message)
	fmt.Printf("ciphertext = %s\n", ciphertext)
	return nil
}

func runDecrypt(c *cli.Context) error {
	ciphertext, err := parseInt(c.String("ciphertext"), "ciphertext")
	if err != nil {
		return err
	}
	p, err := parseInt(c.String("p"), "p")
	if err != nil {
		return err
	}
	q, err := parseInt(c.String("q"), "q")
	if err != nil {
		return err
	}

	candidates, err := cipher.Decrypt(ciphertext, p, q)
	if err != nil {
		return err
	}

	var alpha *encoding.Alphabet
	if c.Bool("decode") {
		alpha, err = encoding.NewAlphabet(c.String("alphabet"))
		if err != nil {
			return err
		}
	}

	for i, candidate := range candidates {
		fmt.Printf("candidate %d = %s\n", i+1, candidate)
		if alpha != nil {
			fmt.Printf("  decoded   = %q\n", alpha.Decode(candidate))
		}
	}
	return nil
}

func runEncode(c *cli.Context) error {
	num, err := encoding.Encode(c.String("text"), c.String("alphabet"))
	if err != nil {
		return err
	}
	fmt.Println(num)
	return nil
}

func runDecode(c *cli.Context) error {
	num, err := parseInt(c.String("number"), "number")
	if err != nil {
		return err
	}
	text, err := encoding.Decode(num, c.String("alphabet"))
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func parseInt(s, name string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal value for --%s: %q", name, s)
	}
	return v, nil
}
