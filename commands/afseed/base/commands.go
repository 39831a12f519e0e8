package base

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aacfactory/afseed"
	"github.com/aacfactory/afseed/bench"
	"github.com/aacfactory/afseed/configs"
)

const passphraseEnv = "AFSEED_PASSPHRASE"

func Execute(args []string) (msg string, err error) {
	if len(args) == 0 {
		err = fmt.Errorf("afseed: command is required, one of encrypt, decrypt, bench")
		return
	}
	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "encrypt":
		if err = Encrypt(args[1:]); err == nil {
			msg = "afseed: encrypt succeed!"
		}
	case "decrypt":
		if err = Decrypt(args[1:]); err == nil {
			msg = "afseed: decrypt succeed!"
		}
	case "bench":
		var out string
		if out, err = Bench(args[1:]); err == nil {
			msg = "afseed: bench results saved to " + out
		}
	default:
		err = fmt.Errorf("afseed: unknown command %s", args[0])
	}
	return
}

func Encrypt(args []string) (err error) {
	return crypt(args, "encrypt", afseed.SealFile)
}

func Decrypt(args []string) (err error) {
	return crypt(args, "decrypt", afseed.OpenFile)
}

func crypt(args []string, name string, fn func([]byte, string, string, bool, ...afseed.SealOption) error) (err error) {
	v, parseErr := parseArguments(args, "passphrase", "in", "out", "force", "workers")
	if parseErr != nil {
		err = parseErr
		return
	}
	passphrase := v["passphrase"]
	if passphrase == "" {
		passphrase = os.Getenv(passphraseEnv)
	}
	if passphrase == "" {
		err = fmt.Errorf("afseed: %s failed, --passphrase or %s is required", name, passphraseEnv)
		return
	}
	src, dst := v["in"], v["out"]
	if src == "" || dst == "" {
		err = fmt.Errorf("afseed: %s failed, --in and --out are required", name)
		return
	}
	workers, workersErr := v.positive("workers", 1)
	if workersErr != nil {
		err = workersErr
		return
	}
	if fnErr := fn([]byte(passphrase), src, dst, v.has("force"), afseed.WithWorkers(workers)); fnErr != nil {
		err = errors.Join(fmt.Errorf("afseed: %s failed", name), fnErr)
		return
	}
	return
}

// Bench runs the benchmark and returns the report path.
func Bench(args []string) (out string, err error) {
	v, parseErr := parseArguments(args, "config", "data", "sizes", "mode", "runs", "workers", "out", "key")
	if parseErr != nil {
		err = parseErr
		return
	}
	config := &configs.Bench{}
	if path := v["config"]; path != "" {
		config, err = configs.LoadBench(path)
		if err != nil {
			return
		}
	}
	if data := v["data"]; data != "" {
		config.Data = data
	}
	if o := v["out"]; o != "" {
		config.Output = o
	}
	if mode := v["mode"]; mode != "" {
		config.Mode = mode
	}
	if key := v["key"]; key != "" {
		config.Key = key
	}
	if config.Runs, err = v.positive("runs", config.Runs); err != nil {
		return
	}
	if config.Workers, err = v.positive("workers", config.Workers); err != nil {
		return
	}
	sizes, sizesErr := v.sizes("sizes")
	if sizesErr != nil {
		err = sizesErr
		return
	}
	if len(sizes) > 0 {
		config.Sizes = sizes
	}
	config.Resolve()

	options, loadErr := config.Load()
	if loadErr != nil {
		err = loadErr
		return
	}
	prices, pricesErr := bench.LoadPricesFile(config.Data)
	if pricesErr != nil {
		err = errors.Join(errors.New("afseed: bench failed"), pricesErr)
		return
	}
	if len(prices) == 0 {
		err = fmt.Errorf("afseed: bench failed, %s holds no prices", config.Data)
		return
	}
	results, runErr := bench.Run(prices, config.Sizes, options...)
	if runErr != nil {
		err = errors.Join(errors.New("afseed: bench failed"), runErr)
		return
	}
	if writeErr := bench.WriteReport(config.Output, results); writeErr != nil {
		err = writeErr
		return
	}
	out = config.Output
	return
}
