// Command contentcheck validates guide content files and answers chat questions offline.
//
//	contentcheck validate --intents intents.yaml --procedures procedures.yaml --translations i18n/
//	contentcheck ask --lang hi "डीबीटी क्या है"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
