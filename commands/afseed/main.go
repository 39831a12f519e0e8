package main

import (
	"fmt"
	"os"

	"github.com/aacfactory/afseed/commands/afseed/base"
)

// main
// afseed encrypt --passphrase={passphrase} --in={src} --out={dst} [--force] [--workers={n}]
// afseed decrypt --passphrase={passphrase} --in={src} --out={dst} [--force] [--workers={n}]
// afseed bench --data={csv} [--config={json}] [--sizes={n,n}] [--mode={block,cipher,stream}] [--runs={n}] [--workers={n}] [--out={json}]
func main() {
	msg, err := base.Execute(os.Args[1:])
	if err != nil {
		fmt.Println(fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
	fmt.Println(msg)
}
